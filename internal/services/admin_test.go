package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/repositories"
)

func seedAdminLedger(t *testing.T, store *repositories.LedgerRepository) {
	t.Helper()
	now := time.Now().UTC()
	cur := "btc"
	_, err := store.Update(context.Background(), func(s *models.Snapshot) error {
		s.Users = []models.User{
			{
				ID: 1, Username: "alice", WalletBalance: 70,
				Subscription: &models.Subscription{
					PlanName:               "Basic",
					ExternalSubscriptionID: 88,
				},
				History: []models.Transaction{
					{Type: models.TxDeposit, Amount: 100, Currency: &cur, OrderID: "deposit_1_a", Timestamp: now.Add(-2 * time.Hour)},
					{Type: models.TxPurchase, Amount: -30, OrderID: "offer_5", Timestamp: now.Add(-time.Hour)},
				},
			},
			{
				ID: 2, Username: "bob", WalletBalance: 20,
				History: []models.Transaction{
					{Type: models.TxDeposit, Amount: 20, Currency: &cur, OrderID: "deposit_2_a", Timestamp: now},
				},
			},
		}
		return nil
	})
	require.NoError(t, err)
}

func TestAdminUsers(t *testing.T) {
	store := newTestStore(t)
	seedAdminLedger(t, store)
	svc := NewAdminService(store, nil)
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	u, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.GetUser(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	seedAdminLedger(t, store)
	svc := NewAdminService(store, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveSubscriptions)
	assert.Equal(t, float64(30), stats.PurchaseRevenue)
	require.Len(t, stats.RecentTransactions, 3)
	// Newest first.
	assert.Equal(t, "bob", stats.RecentTransactions[0].Username)
	for i := 1; i < len(stats.RecentTransactions); i++ {
		assert.False(t, stats.RecentTransactions[i].Timestamp.After(stats.RecentTransactions[i-1].Timestamp))
	}
}

func TestEditSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	seedAdminLedger(t, store)
	panel := NewMockPanelAPI(ctrl)
	svc := NewAdminService(store, panel)
	ctx := context.Background()

	newExpiry := time.Now().UTC().AddDate(0, 1, 0)
	newPlan := int64(2002)
	newName := "Pro"

	panel.EXPECT().
		UpdateSubscription(gomock.Any(), int64(88), int64(2002)).
		Return(nil)

	u, err := svc.EditSubscription(ctx, 1, SubscriptionEdit{
		ExpiresAt:      &newExpiry,
		ExternalPlanID: &newPlan,
		PlanName:       &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pro", u.Subscription.PlanName)
	assert.Equal(t, newExpiry.Format(time.RFC3339), u.Subscription.ExpiresAt)
}

func TestEditSubscription_PanelFailureLeavesRecordUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	seedAdminLedger(t, store)
	panel := NewMockPanelAPI(ctrl)
	svc := NewAdminService(store, panel)
	ctx := context.Background()

	newPlan := int64(2002)
	newName := "Pro"
	panel.EXPECT().
		UpdateSubscription(gomock.Any(), int64(88), int64(2002)).
		Return(assert.AnError)

	_, err := svc.EditSubscription(ctx, 1, SubscriptionEdit{ExternalPlanID: &newPlan, PlanName: &newName})
	assert.ErrorIs(t, err, ErrProvisioningFailed)

	u, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Basic", u.Subscription.PlanName)
}

func TestEditSubscription_Errors(t *testing.T) {
	store := newTestStore(t)
	seedAdminLedger(t, store)
	svc := NewAdminService(store, nil)
	ctx := context.Background()

	name := "X"
	_, err := svc.EditSubscription(ctx, 99, SubscriptionEdit{PlanName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// bob has no subscription.
	_, err = svc.EditSubscription(ctx, 2, SubscriptionEdit{PlanName: &name})
	assert.ErrorIs(t, err, ErrNoSubscription)
}

func TestReconciliationQueue(t *testing.T) {
	store := newTestStore(t)
	svc := NewAdminService(store, nil)
	ctx := context.Background()

	resolvedAt := time.Now().UTC().Add(-time.Hour)
	openID := uuid.NewString()
	closedID := uuid.NewString()
	_, err := store.Update(ctx, func(s *models.Snapshot) error {
		s.Reconciliations = []models.Reconciliation{
			{ID: closedID, UserID: 1, Amount: 30, CreatedAt: time.Now().UTC().Add(-2 * time.Hour), ResolvedAt: &resolvedAt},
			{ID: openID, UserID: 2, Amount: 10, CreatedAt: time.Now().UTC()},
		}
		return nil
	})
	require.NoError(t, err)

	recs, err := svc.ListReconciliations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	// Open records come first.
	assert.Equal(t, openID, recs[0].ID)
	assert.True(t, recs[0].Open())

	resolved, err := svc.ResolveReconciliation(ctx, openID, "refunded manually")
	require.NoError(t, err)
	assert.False(t, resolved.Open())
	assert.Equal(t, "refunded manually", resolved.Note)

	_, err = svc.ResolveReconciliation(ctx, openID, "again")
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	_, err = svc.ResolveReconciliation(ctx, uuid.NewString(), "nope")
	assert.ErrorIs(t, err, ErrReconciliationNotFound)
}

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	notifier := NewMockAdminNotifier(ctrl)
	sweeper := NewReconcileSweeper(store, notifier)
	ctx := context.Background()

	// No open records: no notification.
	require.NoError(t, sweeper.Sweep(ctx))

	resolvedAt := time.Now().UTC()
	_, err := store.Update(ctx, func(s *models.Snapshot) error {
		s.Reconciliations = []models.Reconciliation{
			{ID: uuid.NewString(), UserID: 1, Amount: 30, CreatedAt: time.Now().UTC()},
			{ID: uuid.NewString(), UserID: 2, Amount: 10, CreatedAt: time.Now().UTC()},
			{ID: uuid.NewString(), UserID: 3, Amount: 5, CreatedAt: time.Now().UTC(), ResolvedAt: &resolvedAt},
		}
		return nil
	})
	require.NoError(t, err)

	notifier.EXPECT().NotifyAdmin(gomock.Any()).Do(func(text string) {
		assert.Contains(t, text, "2")
	})
	require.NoError(t, sweeper.Sweep(ctx))
}
