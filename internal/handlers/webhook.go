package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

// SignatureHeader is the provider's IPN signature header.
const SignatureHeader = "x-payments-sig"

// PaymentGateway defines the interface that the IPN service must implement.
type PaymentGateway interface {
	VerifySignature(body []byte, signature string) bool
	Apply(ctx context.Context, n models.PaymentNotification) error
}

// WebhookResponse is the acknowledgement body for IPN deliveries
// swagger:model WebhookResponse
type WebhookResponse struct {
	// Processing status, "success" or "error"
	// default: success
	Status string `json:"status"`
}

// NewPaymentsWebhookHandler returns the handler for payment provider IPN
// callbacks. A request whose signature does not verify is rejected before
// anything is decoded or mutated; a replayed notification acknowledges as
// success without a second credit.
// @Summary Payment provider IPN callback
// @Description Verifies the HMAC signature and applies finished payments to the user's wallet exactly once.
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} handlers.WebhookResponse "Applied or acknowledged"
// @Failure 400 {object} handlers.WebhookResponse "Bad signature or processing error"
// @Router /webhook/payments [post]
func NewPaymentsWebhookHandler(gateway PaymentGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookResponse{Status: "error"})
			return
		}

		if !gateway.VerifySignature(body, r.Header.Get(SignatureHeader)) {
			logger.Log.Warnw("webhook signature verification failed", "remote", r.RemoteAddr)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookResponse{Status: "error"})
			return
		}

		var notification models.PaymentNotification
		if err := json.Unmarshal(body, &notification); err != nil {
			logger.Log.Errorw("failed to decode webhook payload", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookResponse{Status: "error"})
			return
		}

		if err := gateway.Apply(r.Context(), notification); err != nil {
			logger.Log.Errorw("failed to apply payment notification", "order_id", notification.OrderID, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookResponse{Status: "error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WebhookResponse{Status: "success"})
	}
}
