package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

var (
	// ErrOfferNotFound is returned when the offer id is not in the catalog.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrProvisioningFailed is returned when the control panel call failed;
	// the wallet is untouched.
	ErrProvisioningFailed = errors.New("provisioning failed")
	// ErrPostProvisionDebitFailed is returned when the hosting account was
	// provisioned but the wallet debit then failed. The inconsistency is
	// recorded for operator reconciliation.
	ErrPostProvisionDebitFailed = errors.New("debit failed after provisioning")
)

// PanelAPI is the hosting control panel operations the orchestrator uses.
type PanelAPI interface {
	CreateClient(ctx context.Context, email string) (*models.PanelClient, error)
	CreateSubscription(ctx context.Context, clientID, planID int64, domain string) (*models.PanelSubscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID, newPlanID int64) error
	DeleteClient(ctx context.Context, clientID int64) error
}

// WalletDebitor is the slice of the wallet the orchestrator needs.
type WalletDebitor interface {
	Debit(ctx context.Context, userID int64, amount float64, reason string) (float64, error)
}

// PurchaseResult is what the buyer sees after a successful purchase.
type PurchaseResult struct {
	PlanName    string
	ExpiresAt   time.Time
	Credentials models.Credentials
	Upgraded    bool // true when an existing subscription changed plan
}

// PurchaseService sequences "provision hosting account" and "charge wallet".
// The external call always happens first, so a failed provisioning never
// costs the user money; a debit failure after provisioning is recorded as a
// reconciliation case instead of being silently dropped.
//
// Purchases are serialized per user with a logical lock, so one user cannot
// run two purchases concurrently while unrelated users proceed in parallel.
// The ledger's own lock is only ever taken inside wallet/store calls, never
// across the panel's network I/O.
type PurchaseService struct {
	store  LedgerStore
	wallet WalletDebitor
	panel  PanelAPI

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewPurchaseService creates a PurchaseService.
func NewPurchaseService(store LedgerStore, wallet WalletDebitor, panel PanelAPI) *PurchaseService {
	return &PurchaseService{
		store:  store,
		wallet: wallet,
		panel:  panel,
		locks:  make(map[int64]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use.
func (s *PurchaseService) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Purchase buys offerID for userID: new users get a fresh panel client and
// subscription, subscribed users get their plan changed. The debit happens
// only after the panel accepted the operation.
func (s *PurchaseService) Purchase(ctx context.Context, userID, offerID int64) (*PurchaseResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	offer := snap.FindOffer(offerID)
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	user := snap.FindUser(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Checked before any external call; the per-user lock keeps this stable
	// against other purchases by the same user.
	if user.WalletBalance < offer.Price {
		return nil, ErrInsufficientFunds
	}

	var (
		sub      models.Subscription
		upgraded bool
	)
	if user.Subscription == nil {
		client, err := s.panel.CreateClient(ctx, "")
		if err != nil {
			logger.Log.Errorw("panel client creation failed", "user_id", userID, "offer_id", offerID, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}
		panelSub, err := s.panel.CreateSubscription(ctx, client.ExternalClientID, offer.ExternalPlanID, "")
		if err != nil {
			logger.Log.Errorw("panel subscription creation failed", "user_id", userID, "offer_id", offerID, "error", err)
			// Compensate the half-created account; a leftover client with no
			// subscription is useless and would count against panel limits.
			if delErr := s.panel.DeleteClient(ctx, client.ExternalClientID); delErr != nil {
				logger.Log.Errorw("failed to delete orphaned panel client", "external_client_id", client.ExternalClientID, "error", delErr)
			}
			return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}
		sub = models.Subscription{
			PlanName:               offer.Name,
			ExternalClientID:       client.ExternalClientID,
			ExternalSubscriptionID: panelSub.SubscriptionID,
			Credentials: models.Credentials{
				Username: client.Username,
				Password: client.Password,
				Domain:   panelSub.Domain,
			},
		}
	} else {
		if err := s.panel.UpdateSubscription(ctx, user.Subscription.ExternalSubscriptionID, offer.ExternalPlanID); err != nil {
			logger.Log.Errorw("panel subscription update failed", "user_id", userID, "offer_id", offerID, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}
		sub = *user.Subscription
		sub.PlanName = offer.Name
		upgraded = true
	}

	expiresAt := time.Now().UTC().AddDate(0, 0, offer.DurationDays)
	sub.ExpiresAt = expiresAt.Format(time.RFC3339)

	if _, err := s.wallet.Debit(ctx, userID, offer.Price, fmt.Sprintf("offer_%d", offer.ID)); err != nil {
		s.recordDebitFailure(ctx, userID, offer, sub, err)
		return nil, fmt.Errorf("%w: %v", ErrPostProvisionDebitFailed, err)
	}

	if _, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		u := snap.FindUser(userID)
		if u == nil {
			return ErrUserNotFound
		}
		subCopy := sub
		u.Subscription = &subCopy
		return nil
	}); err != nil {
		logger.Log.Errorw("failed to persist subscription after purchase", "user_id", userID, "offer_id", offerID, "error", err)
		return nil, err
	}

	logger.Log.Infow("purchase completed", "user_id", userID, "offer_id", offerID, "plan", offer.Name, "upgraded", upgraded)
	return &PurchaseResult{
		PlanName:    offer.Name,
		ExpiresAt:   expiresAt,
		Credentials: sub.Credentials,
		Upgraded:    upgraded,
	}, nil
}

// recordDebitFailure appends a reconciliation record for a provisioned but
// unpaid account. This state needs a human decision, so it is logged at
// error level and surfaced through the operator API.
func (s *PurchaseService) recordDebitFailure(ctx context.Context, userID int64, offer *models.Offer, sub models.Subscription, cause error) {
	rec := models.Reconciliation{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		OfferID:                offer.ID,
		Amount:                 offer.Price,
		ExternalClientID:       sub.ExternalClientID,
		ExternalSubscriptionID: sub.ExternalSubscriptionID,
		Reason:                 cause.Error(),
		CreatedAt:              time.Now().UTC(),
	}

	if _, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		snap.Reconciliations = append(snap.Reconciliations, rec)
		return nil
	}); err != nil {
		logger.Log.Errorw("failed to record reconciliation case", "user_id", userID, "offer_id", offer.ID, "error", err)
	}

	logger.Log.Errorw("provisioned account left unpaid, operator reconciliation required",
		"reconciliation_id", rec.ID,
		"user_id", userID,
		"offer_id", offer.ID,
		"amount", offer.Price,
		"external_client_id", sub.ExternalClientID,
		"external_subscription_id", sub.ExternalSubscriptionID,
		"cause", cause,
	)
}
