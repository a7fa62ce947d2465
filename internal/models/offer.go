package models

// Offer is a purchasable hosting plan. Ids come from the snapshot's monotonic
// counter, so a deleted offer's id is never handed out again.
type Offer struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`            // Wallet currency (USD), must be positive
	DurationDays   int     `json:"duration_days"`    // Subscription length, must be positive
	ExternalPlanID int64   `json:"external_plan_id"` // Service plan id in the control panel's catalog
}
