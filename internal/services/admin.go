package services

import (
	"context"
	"sort"
	"time"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

// SubscriptionEdit is an operator change to a user's subscription.
// ExternalPlanID, when set and different from the current plan, triggers a
// plan change in the control panel before the record is updated.
type SubscriptionEdit struct {
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	ExternalPlanID *int64     `json:"external_plan_id,omitempty"`
	PlanName       *string    `json:"plan_name,omitempty"`
}

// DashboardStats is the operator dashboard summary.
type DashboardStats struct {
	TotalUsers          int                 `json:"total_users"`
	ActiveSubscriptions int                 `json:"active_subscriptions"`
	PurchaseRevenue     float64             `json:"purchase_revenue"`
	RecentTransactions  []RecentTransaction `json:"recent_transactions"`
}

// RecentTransaction is a history entry annotated with its owner for the
// dashboard's activity feed.
type RecentTransaction struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Currency  *string   `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminService backs the operator API: user views, subscription edits,
// dashboard statistics and the reconciliation queue. It adds no business
// rules of its own; money movements go through the wallet service.
type AdminService struct {
	store LedgerStore
	panel PanelAPI
}

// NewAdminService creates an AdminService.
func NewAdminService(store LedgerStore, panel PanelAPI) *AdminService {
	return &AdminService{store: store, panel: panel}
}

// ListUsers returns all users.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Users, nil
}

// GetUser returns one user.
func (s *AdminService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return models.User{}, err
	}
	u := snap.FindUser(userID)
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return u.Clone(), nil
}

// EditSubscription applies an operator edit to a user's subscription. A plan
// change is pushed to the control panel first, so the stored record never
// claims a plan the panel rejected.
func (s *AdminService) EditSubscription(ctx context.Context, userID int64, edit SubscriptionEdit) (models.User, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return models.User{}, err
	}
	u := snap.FindUser(userID)
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	if u.Subscription == nil {
		return models.User{}, ErrNoSubscription
	}

	if edit.ExternalPlanID != nil {
		if err := s.panel.UpdateSubscription(ctx, u.Subscription.ExternalSubscriptionID, *edit.ExternalPlanID); err != nil {
			logger.Log.Errorw("panel plan change failed", "user_id", userID, "plan_id", *edit.ExternalPlanID, "error", err)
			return models.User{}, ErrProvisioningFailed
		}
	}

	var out models.User
	_, err = s.store.Update(ctx, func(snap *models.Snapshot) error {
		u := snap.FindUser(userID)
		if u == nil {
			return ErrUserNotFound
		}
		if u.Subscription == nil {
			return ErrNoSubscription
		}
		if edit.ExpiresAt != nil {
			u.Subscription.ExpiresAt = edit.ExpiresAt.UTC().Format(time.RFC3339)
		}
		if edit.PlanName != nil {
			u.Subscription.PlanName = *edit.PlanName
		}
		out = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return out, nil
}

// Stats computes the dashboard summary: user counts, active subscriptions,
// total purchase revenue and the ten most recent transactions.
func (s *AdminService) Stats(ctx context.Context) (DashboardStats, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalUsers: len(snap.Users)}
	var recent []RecentTransaction
	for _, u := range snap.Users {
		if u.Subscription != nil {
			stats.ActiveSubscriptions++
		}
		for _, tx := range u.History {
			if tx.Type == models.TxPurchase {
				stats.PurchaseRevenue += -tx.Amount
			}
			recent = append(recent, RecentTransaction{
				UserID:    u.ID,
				Username:  u.Username,
				Type:      tx.Type,
				Amount:    tx.Amount,
				Currency:  tx.Currency,
				Timestamp: tx.Timestamp,
			})
		}
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentTransactions = recent
	return stats, nil
}

// ListReconciliations returns reconciliation records, open ones first.
func (s *AdminService) ListReconciliations(ctx context.Context) ([]models.Reconciliation, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	recs := snap.Reconciliations
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Open() && !recs[j].Open()
	})
	return recs, nil
}

// ResolveReconciliation closes a record with the operator's note. Resolution
// is a bookkeeping action; any refund or forced debit the operator decides
// on goes through the wallet endpoints separately.
func (s *AdminService) ResolveReconciliation(ctx context.Context, id, note string) (models.Reconciliation, error) {
	var out models.Reconciliation
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		for i := range snap.Reconciliations {
			if snap.Reconciliations[i].ID == id {
				if snap.Reconciliations[i].ResolvedAt != nil {
					return ErrAlreadyResolved
				}
				now := time.Now().UTC()
				snap.Reconciliations[i].ResolvedAt = &now
				snap.Reconciliations[i].Note = note
				out = snap.Reconciliations[i]
				return nil
			}
		}
		return ErrReconciliationNotFound
	})
	if err != nil {
		return models.Reconciliation{}, err
	}
	return out, nil
}
