package models

// User is a wallet account keyed by the Telegram user id. The id is assigned
// by the chat platform and never changes; the record is created on first
// interaction and never deleted.
type User struct {
	ID            int64         `json:"id"`                     // Telegram user id, unique and immutable
	Username      string        `json:"username"`               // Display name, informational only
	WalletBalance float64       `json:"wallet_balance"`         // Derived value; always equals the sum of History amounts
	Subscription  *Subscription `json:"subscription,omitempty"` // At most one active hosting subscription
	History       []Transaction `json:"history"`                // Append-only, insertion order is chronological
}

// Subscription is the hosting account a user purchased. External ids refer to
// the control panel's client and subscription objects.
type Subscription struct {
	PlanName               string      `json:"plan_name"`
	ExpiresAt              string      `json:"expires_at"` // RFC 3339 date
	ExternalClientID       int64       `json:"external_client_id"`
	ExternalSubscriptionID int64       `json:"external_subscription_id"`
	Credentials            Credentials `json:"credentials"`
}

// Credentials are the panel login details handed to the user after purchase.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Domain   string `json:"domain"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	out := u
	if u.Subscription != nil {
		sub := *u.Subscription
		out.Subscription = &sub
	}
	if u.History != nil {
		out.History = make([]Transaction, len(u.History))
		copy(out.History, u.History)
	}
	return out
}
