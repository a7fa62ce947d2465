package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/repositories"
)

func newTestStore(t *testing.T) *repositories.LedgerRepository {
	t.Helper()
	repo, err := repositories.NewLedgerRepository(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	return repo
}

// historySum asserts the core accounting invariant: the stored balance is
// exactly the sum of the user's history amounts.
func historySum(t *testing.T, store *repositories.LedgerRepository, userID int64) {
	t.Helper()
	snap, err := store.Read(context.Background())
	require.NoError(t, err)
	u := snap.FindUser(userID)
	require.NotNil(t, u)
	var sum float64
	for _, txn := range u.History {
		sum += txn.Amount
	}
	assert.InDelta(t, u.WalletBalance, sum, 1e-9)
}

func TestEnsureUser(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Zero(t, u.WalletBalance)

	// Second call is a no-op apart from the username refresh.
	u, err = svc.EnsureUser(ctx, 1, "alice_renamed")
	require.NoError(t, err)
	assert.Equal(t, "alice_renamed", u.Username)

	snap, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Users, 1)
}

func TestCredit(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)

	balance, err := svc.Credit(ctx, 1, 50, "btc", "deposit_1_aaa")
	require.NoError(t, err)
	assert.Equal(t, float64(50), balance)
	historySum(t, store, 1)

	history, err := svc.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.TxDeposit, history[0].Type)
	assert.Equal(t, "deposit_1_aaa", history[0].OrderID)
	require.NotNil(t, history[0].Currency)
	assert.Equal(t, "btc", *history[0].Currency)
}

func TestCredit_DuplicateOrderRef(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)

	_, err = svc.Credit(ctx, 1, 50, "btc", "deposit_1_aaa")
	require.NoError(t, err)

	// Same order delivered again: nothing changes.
	_, err = svc.Credit(ctx, 1, 50, "btc", "deposit_1_aaa")
	assert.ErrorIs(t, err, ErrDuplicateCredit)

	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(50), balance)
	historySum(t, store, 1)

	// A different order goes through.
	balance, err = svc.Credit(ctx, 1, 25, "eth", "deposit_1_bbb")
	require.NoError(t, err)
	assert.Equal(t, float64(75), balance)
}

func TestCredit_Validation(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.Credit(ctx, 1, 0, "btc", "x")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Credit(ctx, 1, -5, "btc", "x")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Credit(ctx, 99, 10, "btc", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDebit(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	_, err = svc.Credit(ctx, 1, 100, "btc", "deposit_1_aaa")
	require.NoError(t, err)

	balance, err := svc.Debit(ctx, 1, 30, "offer_5")
	require.NoError(t, err)
	assert.Equal(t, float64(70), balance)
	historySum(t, store, 1)

	history, err := svc.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.TxPurchase, history[1].Type)
	assert.Equal(t, float64(-30), history[1].Amount)
}

func TestDebit_InsufficientFunds(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	_, err = svc.Credit(ctx, 1, 10, "btc", "deposit_1_aaa")
	require.NoError(t, err)

	_, err = svc.Debit(ctx, 1, 30, "offer_5")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Balance and history untouched.
	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(10), balance)
	history, err := svc.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAdjust(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)

	balance, err := svc.Adjust(ctx, 1, 20, "manual top-up")
	require.NoError(t, err)
	assert.Equal(t, float64(20), balance)

	balance, err = svc.Adjust(ctx, 1, -5, "correction")
	require.NoError(t, err)
	assert.Equal(t, float64(15), balance)
	historySum(t, store, 1)

	// Negative adjustments obey the balance floor.
	_, err = svc.Adjust(ctx, 1, -100, "overdraft")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = svc.Adjust(ctx, 1, 0, "noop")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGetHistory_Limit(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = svc.Adjust(ctx, 1, 1, "seed")
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	history, err = svc.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestTimestampsMonotonic(t *testing.T) {
	store := newTestStore(t)
	svc := NewWalletService(store, nil)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err = svc.Adjust(ctx, 1, 1, "seed")
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
	}
}

func TestCredit_PublishesTransactionEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := newTestStore(t)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewWalletService(store, writer)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.Credit(ctx, 1, 50, "btc", "deposit_1_aaa")
	require.NoError(t, err)
}

func TestCredit_PublishFailureDoesNotFailCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := newTestStore(t)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewWalletService(store, writer)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(assert.AnError)
	balance, err := svc.Credit(ctx, 1, 50, "btc", "deposit_1_aaa")
	require.NoError(t, err)
	assert.Equal(t, float64(50), balance)
}
