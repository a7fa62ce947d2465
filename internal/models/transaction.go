package models

import "time"

// Transaction types. The set is extensible; these three are the ones the
// system produces today.
const (
	TxDeposit    = "deposit"    // wallet credit from a confirmed crypto payment
	TxPurchase   = "purchase"   // wallet debit for a provisioned offer
	TxAdjustment = "adjustment" // manual operator correction
)

// Transaction is a single wallet history entry. Transactions are created only
// by the wallet service and are immutable once appended.
type Transaction struct {
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`             // Positive for credits, negative for debits
	Currency  *string   `json:"currency"`           // Crypto ticker for deposits, nil for internal debits
	OrderID   string    `json:"order_id,omitempty"` // Payment order reference; dedup key for deposits
	Timestamp time.Time `json:"timestamp"`          // Assigned by the wallet service, non-decreasing per user
}
