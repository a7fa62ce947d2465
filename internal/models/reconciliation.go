package models

import "time"

// Reconciliation records a provisioned-but-unpaid purchase: the external
// provisioning call succeeded but the following wallet debit did not. Records
// stay open until an operator resolves them explicitly.
type Reconciliation struct {
	ID                     string     `json:"id"`
	UserID                 int64      `json:"user_id"`
	OfferID                int64      `json:"offer_id"`
	Amount                 float64    `json:"amount"`
	ExternalClientID       int64      `json:"external_client_id"`
	ExternalSubscriptionID int64      `json:"external_subscription_id"`
	Reason                 string     `json:"reason"`
	CreatedAt              time.Time  `json:"created_at"`
	ResolvedAt             *time.Time `json:"resolved_at,omitempty"`
	Note                   string     `json:"note,omitempty"`
}

// Open reports whether the record still needs operator attention.
func (r Reconciliation) Open() bool { return r.ResolvedAt == nil }
