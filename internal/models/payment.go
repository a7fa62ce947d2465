package models

// PaymentInvoice is a created crypto payment: the address the user must pay
// to and the provider's id for the payment.
type PaymentInvoice struct {
	PaymentID          string  `json:"payment_id"`
	PayAddress         string  `json:"pay_address"`
	PayAmount          float64 `json:"pay_amount"`
	ExpirationEstimate string  `json:"expiration_estimate_date"`
}

// PaymentNotification is the decoded body of a provider IPN callback. Only
// the fields the gateway acts on are modeled; the signature is computed over
// the raw body, not over this struct.
type PaymentNotification struct {
	PaymentID     int64   `json:"payment_id"`
	PaymentStatus string  `json:"payment_status"`
	OrderID       string  `json:"order_id"`
	PriceAmount   float64 `json:"price_amount"`
	PriceCurrency string  `json:"price_currency"`
	PayCurrency   string  `json:"pay_currency"`
}

// Payment statuses the gateway distinguishes. Everything except "finished"
// is acknowledged without touching the wallet.
const (
	PaymentStatusFinished = "finished"
)

// ConversationState is a user's position in the deposit dialog, kept in redis
// with a TTL so abandoned dialogs expire instead of lingering forever.
type ConversationState struct {
	State    string `json:"state"`
	Currency string `json:"currency,omitempty"`
	OrderID  string `json:"order_id,omitempty"`
}

// Conversation states.
const (
	ConvAwaitingDepositAmount = "awaiting_deposit_amount"
)
