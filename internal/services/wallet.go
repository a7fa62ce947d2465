package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDuplicateCredit is returned when a credit's order reference was
	// already applied. Callers treat it as a successful no-op.
	ErrDuplicateCredit = errors.New("duplicate credit")
	// ErrInvalidAmount is returned for non-positive credit/debit amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// LedgerStore is the snapshot store the wallet mutates. Update must serialize
// all concurrent callers and apply the mutator atomically.
type LedgerStore interface {
	Read(ctx context.Context) (models.Snapshot, error)
	Update(ctx context.Context, mutate func(*models.Snapshot) error) (models.Snapshot, error)
}

// KafkaWriter is the transaction event sink.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WalletService owns every wallet-balance mutation. Each mutating method is
// a single LedgerStore.Update call: the balance change and the matching
// history entry commit together or not at all, so balance always equals the
// sum of history amounts.
type WalletService struct {
	store       LedgerStore
	kafkaWriter KafkaWriter
}

// NewWalletService creates a WalletService. kafkaWriter may be nil, in which
// case transaction events are not published.
func NewWalletService(store LedgerStore, kafkaWriter KafkaWriter) *WalletService {
	return &WalletService{store: store, kafkaWriter: kafkaWriter}
}

// transactionEvent is the Kafka payload for a committed wallet transaction.
type transactionEvent struct {
	EventID   string  `json:"event_id"`
	UserID    int64   `json:"user_id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Currency  *string `json:"currency"`
	OrderID   string  `json:"order_id,omitempty"`
	Timestamp int64   `json:"timestamp"`
	Balance   float64 `json:"balance"`
}

// publishTransaction sends a committed transaction to Kafka. Failures are
// logged and swallowed: the wallet mutation already committed and event
// delivery must not undo or fail it.
func (s *WalletService) publishTransaction(ctx context.Context, userID int64, txn models.Transaction, balance float64) {
	if s.kafkaWriter == nil {
		return
	}

	event := transactionEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Type:      txn.Type,
		Amount:    txn.Amount,
		Currency:  txn.Currency,
		OrderID:   txn.OrderID,
		Timestamp: txn.Timestamp.Unix(),
		Balance:   balance,
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "user_id", userID, "error", err)
		return
	}

	msg := kafka.Message{Key: []byte(event.EventID), Value: data}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "user_id", userID, "error", err)
	}
}

// nextTimestamp returns the creation time for a new history entry: wall
// clock, clamped so per-user timestamps never go backwards.
func nextTimestamp(u *models.User) time.Time {
	now := time.Now().UTC()
	if n := len(u.History); n > 0 && u.History[n-1].Timestamp.After(now) {
		return u.History[n-1].Timestamp
	}
	return now
}

// EnsureUser creates the user record on first interaction. Existing users
// are returned as-is; the stored username is refreshed when it changed.
func (s *WalletService) EnsureUser(ctx context.Context, userID int64, username string) (models.User, error) {
	var out models.User
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		if u := snap.FindUser(userID); u != nil {
			if username != "" && u.Username != username {
				u.Username = username
			}
			out = u.Clone()
			return nil
		}
		snap.Users = append(snap.Users, models.User{
			ID:       userID,
			Username: username,
			History:  []models.Transaction{},
		})
		out = snap.Users[len(snap.Users)-1].Clone()
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to ensure user", "user_id", userID, "error", err)
		return models.User{}, err
	}
	return out, nil
}

// Credit applies a confirmed deposit. orderRef is the payment order id; a
// credit whose orderRef was already applied fails with ErrDuplicateCredit
// and changes nothing, which makes webhook replays safe.
func (s *WalletService) Credit(ctx context.Context, userID int64, amount float64, currency, orderRef string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var (
		txn     models.Transaction
		balance float64
	)
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		u := snap.FindUser(userID)
		if u == nil {
			return ErrUserNotFound
		}
		for _, t := range u.History {
			if t.OrderID != "" && t.OrderID == orderRef {
				return ErrDuplicateCredit
			}
		}
		cur := currency
		txn = models.Transaction{
			Type:      models.TxDeposit,
			Amount:    amount,
			Currency:  &cur,
			OrderID:   orderRef,
			Timestamp: nextTimestamp(u),
		}
		u.History = append(u.History, txn)
		u.WalletBalance += amount
		balance = u.WalletBalance
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateCredit) {
			logger.Log.Errorw("failed to credit wallet", "user_id", userID, "amount", amount, "order_id", orderRef, "error", err)
		}
		return 0, err
	}

	s.publishTransaction(ctx, userID, txn, balance)
	return balance, nil
}

// Debit charges the wallet for a purchase. The amount is recorded negated.
// When the balance does not cover the amount the call fails with
// ErrInsufficientFunds and neither balance nor history change.
func (s *WalletService) Debit(ctx context.Context, userID int64, amount float64, reason string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var (
		txn     models.Transaction
		balance float64
	)
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		u := snap.FindUser(userID)
		if u == nil {
			return ErrUserNotFound
		}
		if u.WalletBalance < amount {
			return ErrInsufficientFunds
		}
		txn = models.Transaction{
			Type:      models.TxPurchase,
			Amount:    -amount,
			OrderID:   reason,
			Timestamp: nextTimestamp(u),
		}
		u.History = append(u.History, txn)
		u.WalletBalance -= amount
		balance = u.WalletBalance
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Errorw("failed to debit wallet", "user_id", userID, "amount", amount, "error", err)
		}
		return 0, err
	}

	s.publishTransaction(ctx, userID, txn, balance)
	return balance, nil
}

// Adjust applies a signed operator correction. Negative adjustments obey the
// same balance floor as debits.
func (s *WalletService) Adjust(ctx context.Context, userID int64, amount float64, note string) (float64, error) {
	if amount == 0 {
		return 0, ErrInvalidAmount
	}

	var (
		txn     models.Transaction
		balance float64
	)
	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		u := snap.FindUser(userID)
		if u == nil {
			return ErrUserNotFound
		}
		if amount < 0 && u.WalletBalance < -amount {
			return ErrInsufficientFunds
		}
		txn = models.Transaction{
			Type:      models.TxAdjustment,
			Amount:    amount,
			OrderID:   note,
			Timestamp: nextTimestamp(u),
		}
		u.History = append(u.History, txn)
		u.WalletBalance += amount
		balance = u.WalletBalance
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to adjust wallet", "user_id", userID, "amount", amount, "error", err)
		return 0, err
	}

	s.publishTransaction(ctx, userID, txn, balance)
	return balance, nil
}

// GetBalance returns the user's wallet balance.
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return 0, err
	}
	u := snap.FindUser(userID)
	if u == nil {
		return 0, ErrUserNotFound
	}
	return u.WalletBalance, nil
}

// GetHistory returns the user's most recent transactions, newest last, up to
// limit entries (0 means all).
func (s *WalletService) GetHistory(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	u := snap.FindUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}
	history := u.History
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]models.Transaction, len(history))
	copy(out, history)
	return out, nil
}
