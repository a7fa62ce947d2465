package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

// PaymentsFacade is the crypto payment provider's REST client. All requests
// are authenticated with the account API key; invoice amounts are priced in
// USD, matching the wallet currency.
type PaymentsFacade struct {
	baseURL     string
	apiKey      string
	callbackURL string
	client      *http.Client
}

// NewPaymentsFacade creates a client. callbackURL is the public IPN endpoint
// the provider will deliver payment notifications to.
func NewPaymentsFacade(baseURL, apiKey, callbackURL string) *PaymentsFacade {
	return &PaymentsFacade{
		baseURL:     baseURL,
		apiKey:      apiKey,
		callbackURL: callbackURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *PaymentsFacade) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("payments: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("payments: build request: %w", err)
	}
	req.Header.Set("x-api-key", f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("payments: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		logger.Log.Errorw("payment provider error", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "body", string(bytes.TrimSpace(data)))
		return fmt.Errorf("payments: %s %s: status %d", method, endpoint, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("payments: decode response: %w", err)
		}
	}
	return nil
}

// CreatePayment creates a crypto invoice for a USD-priced deposit. The
// orderID ties the eventual IPN back to the user's wallet.
func (f *PaymentsFacade) CreatePayment(ctx context.Context, amount float64, currency, orderID string, userID int64) (*models.PaymentInvoice, error) {
	body := map[string]any{
		"price_amount":      amount,
		"price_currency":    "usd",
		"pay_currency":      currency,
		"ipn_callback_url":  f.callbackURL,
		"order_id":          orderID,
		"order_description": fmt.Sprintf("Deposit for user %d", userID),
	}

	var resp struct {
		PaymentID          json.Number `json:"payment_id"`
		PayAddress         string      `json:"pay_address"`
		PayAmount          float64     `json:"pay_amount"`
		ExpirationEstimate string      `json:"expiration_estimate_date"`
	}
	if err := f.do(ctx, http.MethodPost, "/payment", body, &resp); err != nil {
		return nil, err
	}
	return &models.PaymentInvoice{
		PaymentID:          resp.PaymentID.String(),
		PayAddress:         resp.PayAddress,
		PayAmount:          resp.PayAmount,
		ExpirationEstimate: resp.ExpirationEstimate,
	}, nil
}

// GetCurrencies returns the tickers the provider accepts.
func (f *PaymentsFacade) GetCurrencies(ctx context.Context) ([]string, error) {
	var resp struct {
		Currencies []string `json:"currencies"`
	}
	if err := f.do(ctx, http.MethodGet, "/currencies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Currencies, nil
}

// GetMinAmount returns the smallest USD deposit the provider will convert
// into the given currency.
func (f *PaymentsFacade) GetMinAmount(ctx context.Context, currency string) (float64, error) {
	q := url.Values{}
	q.Set("currency_from", "usd")
	q.Set("currency_to", currency)

	var resp struct {
		MinAmount float64 `json:"min_amount"`
	}
	if err := f.do(ctx, http.MethodGet, "/min-amount?"+q.Encode(), nil, &resp); err != nil {
		return 0, err
	}
	return resp.MinAmount, nil
}
