package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

// OfferInput is the operator-supplied offer definition.
type OfferInput struct {
	Name           string  `json:"name" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	DurationDays   int     `json:"duration_days" validate:"required,gt=0"`
	ExternalPlanID int64   `json:"external_plan_id" validate:"required"`
}

// OfferService is CRUD over the purchasable plan catalog. Ids come from the
// snapshot's monotonic counter and are never reused, so a deleted offer's id
// cannot collide with a later one. Deleting an offer does not touch
// subscriptions already created from it.
type OfferService struct {
	store    LedgerStore
	validate *validator.Validate
}

// NewOfferService creates an OfferService.
func NewOfferService(store LedgerStore) *OfferService {
	return &OfferService{
		store:    store,
		validate: validator.New(),
	}
}

// List returns the catalog in creation order.
func (s *OfferService) List(ctx context.Context) ([]models.Offer, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Offers, nil
}

// Get returns one offer.
func (s *OfferService) Get(ctx context.Context, offerID int64) (models.Offer, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return models.Offer{}, err
	}
	offer := snap.FindOffer(offerID)
	if offer == nil {
		return models.Offer{}, ErrOfferNotFound
	}
	return *offer, nil
}

// Create validates and appends a new offer, assigning the next id.
func (s *OfferService) Create(ctx context.Context, in OfferInput) (models.Offer, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.Offer{}, err
	}

	var created models.Offer
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		if snap.NextOfferID == 0 {
			snap.NextOfferID = 1
		}
		created = models.Offer{
			ID:             snap.NextOfferID,
			Name:           in.Name,
			Price:          in.Price,
			DurationDays:   in.DurationDays,
			ExternalPlanID: in.ExternalPlanID,
		}
		snap.NextOfferID++
		snap.Offers = append(snap.Offers, created)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create offer", "name", in.Name, "error", err)
		return models.Offer{}, err
	}
	return created, nil
}

// Update validates and replaces an existing offer's fields; the id stays.
func (s *OfferService) Update(ctx context.Context, offerID int64, in OfferInput) (models.Offer, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.Offer{}, err
	}

	var updated models.Offer
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		offer := snap.FindOffer(offerID)
		if offer == nil {
			return ErrOfferNotFound
		}
		offer.Name = in.Name
		offer.Price = in.Price
		offer.DurationDays = in.DurationDays
		offer.ExternalPlanID = in.ExternalPlanID
		updated = *offer
		return nil
	})
	if err != nil {
		return models.Offer{}, err
	}
	return updated, nil
}

// Delete removes an offer from the catalog.
func (s *OfferService) Delete(ctx context.Context, offerID int64) error {
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		for i := range snap.Offers {
			if snap.Offers[i].ID == offerID {
				snap.Offers = append(snap.Offers[:i], snap.Offers[i+1:]...)
				return nil
			}
		}
		return ErrOfferNotFound
	})
	return err
}
