package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akosachev/panelshop/internal/logger"
)

var (
	// ErrNoSubscription is returned when an edit targets a user without one.
	ErrNoSubscription = errors.New("user has no subscription")
	// ErrReconciliationNotFound is returned for an unknown record id.
	ErrReconciliationNotFound = errors.New("reconciliation record not found")
	// ErrAlreadyResolved is returned when a record was resolved before.
	ErrAlreadyResolved = errors.New("reconciliation record already resolved")
)

// AdminNotifier delivers out-of-band messages to the operator, typically the
// bot posting into the admin chat.
type AdminNotifier interface {
	NotifyAdmin(text string)
}

// ReconcileSweeper periodically re-surfaces open reconciliation records so
// provisioned-but-unpaid accounts cannot be forgotten. It never mutates
// money on its own: resolution is an explicit operator decision.
type ReconcileSweeper struct {
	store    LedgerStore
	notifier AdminNotifier
}

// NewReconcileSweeper creates a sweeper. notifier may be nil.
func NewReconcileSweeper(store LedgerStore, notifier AdminNotifier) *ReconcileSweeper {
	return &ReconcileSweeper{store: store, notifier: notifier}
}

// Sweep logs every open record at error level and notifies the admin chat
// with a summary. Intended to run from cron.
func (s *ReconcileSweeper) Sweep(ctx context.Context) error {
	snap, err := s.store.Read(ctx)
	if err != nil {
		logger.Log.Errorw("reconciliation sweep failed to read ledger", "error", err)
		return err
	}

	open := 0
	for _, rec := range snap.Reconciliations {
		if !rec.Open() {
			continue
		}
		open++
		logger.Log.Errorw("open reconciliation case",
			"reconciliation_id", rec.ID,
			"user_id", rec.UserID,
			"offer_id", rec.OfferID,
			"amount", rec.Amount,
			"external_client_id", rec.ExternalClientID,
			"created_at", rec.CreatedAt,
			"reason", rec.Reason,
		)
	}

	if open > 0 && s.notifier != nil {
		s.notifier.NotifyAdmin(fmt.Sprintf("⚠️ %d provisioned-but-unpaid account(s) need reconciliation. Check the dashboard.", open))
	}
	return nil
}
