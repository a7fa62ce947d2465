package models

// PanelClient is the result of creating a client account in the hosting
// control panel. The password is only known at creation time.
type PanelClient struct {
	ExternalClientID int64  `json:"external_client_id"`
	Username         string `json:"username"`
	Password         string `json:"password"`
}

// PanelSubscription is the result of creating a hosting subscription.
type PanelSubscription struct {
	SubscriptionID int64  `json:"subscription_id"`
	Domain         string `json:"domain"`
}
