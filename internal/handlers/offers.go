package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

// OfferCatalog defines the interface that the offer service must implement.
type OfferCatalog interface {
	List(ctx context.Context) ([]models.Offer, error)
	Get(ctx context.Context, offerID int64) (models.Offer, error)
	Create(ctx context.Context, in services.OfferInput) (models.Offer, error)
	Update(ctx context.Context, offerID int64, in services.OfferInput) (models.Offer, error)
	Delete(ctx context.Context, offerID int64) error
}

// OfferErrorResponse represents an error on offer endpoints
// swagger:model OfferErrorResponse
type OfferErrorResponse struct {
	// Error message
	// default: Offer not found
	Error string `json:"error"`
}

func offerIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeOfferError(w http.ResponseWriter, err error) {
	var vErr validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrOfferNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Offer not found"})
	case errors.As(err, &vErr):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid offer: name, positive price and positive duration are required"})
	default:
		logger.Log.Errorw("offer operation failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Internal server error"})
	}
}

// NewListOffersHandler returns the offer catalog.
// @Summary List offers
// @Tags offers
// @Produce json
// @Success 200 {array} models.Offer
// @Router /offers [get]
// @Security BearerAuth
func NewListOffersHandler(svc OfferCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		offers, err := svc.List(r.Context())
		if err != nil {
			writeOfferError(w, err)
			return
		}
		json.NewEncoder(w).Encode(offers)
	}
}

// NewGetOfferHandler returns one offer.
// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer id"
// @Success 200 {object} models.Offer
// @Failure 404 {object} handlers.OfferErrorResponse "Offer not found"
// @Router /offers/{id} [get]
// @Security BearerAuth
func NewGetOfferHandler(svc OfferCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		offerID, err := offerIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid offer id"})
			return
		}

		offer, err := svc.Get(r.Context(), offerID)
		if err != nil {
			writeOfferError(w, err)
			return
		}
		json.NewEncoder(w).Encode(offer)
	}
}

// NewCreateOfferHandler creates an offer.
// @Summary Create offer
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body services.OfferInput true "Offer definition"
// @Success 201 {object} models.Offer
// @Failure 400 {object} handlers.OfferErrorResponse "Validation failed"
// @Router /offers [post]
// @Security BearerAuth
func NewCreateOfferHandler(svc OfferCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var in services.OfferInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid request body"})
			return
		}

		offer, err := svc.Create(r.Context(), in)
		if err != nil {
			writeOfferError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(offer)
	}
}

// NewUpdateOfferHandler updates an offer.
// @Summary Update offer
// @Tags offers
// @Accept json
// @Produce json
// @Param id path int true "Offer id"
// @Param offer body services.OfferInput true "Offer definition"
// @Success 200 {object} models.Offer
// @Failure 400 {object} handlers.OfferErrorResponse "Validation failed"
// @Failure 404 {object} handlers.OfferErrorResponse "Offer not found"
// @Router /offers/{id} [put]
// @Security BearerAuth
func NewUpdateOfferHandler(svc OfferCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		offerID, err := offerIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid offer id"})
			return
		}

		var in services.OfferInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid request body"})
			return
		}

		offer, err := svc.Update(r.Context(), offerID, in)
		if err != nil {
			writeOfferError(w, err)
			return
		}
		json.NewEncoder(w).Encode(offer)
	}
}

// NewDeleteOfferHandler removes an offer. Subscriptions already sold keep
// their plan in the control panel.
// @Summary Delete offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer id"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.OfferErrorResponse "Offer not found"
// @Router /offers/{id} [delete]
// @Security BearerAuth
func NewDeleteOfferHandler(svc OfferCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offerID, err := offerIDParam(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfferErrorResponse{Error: "Invalid offer id"})
			return
		}

		if err := svc.Delete(r.Context(), offerID); err != nil {
			w.Header().Set("Content-Type", "application/json")
			writeOfferError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
