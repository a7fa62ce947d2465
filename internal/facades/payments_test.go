package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 50.0, body["price_amount"])
		assert.Equal(t, "usd", body["price_currency"])
		assert.Equal(t, "btc", body["pay_currency"])
		assert.Equal(t, "https://bot.example.com/webhook/payments", body["ipn_callback_url"])
		assert.Equal(t, "deposit_7_abc", body["order_id"])
		assert.Equal(t, "Deposit for user 7", body["order_description"])

		// The provider returns payment_id as a bare number.
		_, _ = w.Write([]byte(`{
			"payment_id": 5077125051,
			"pay_address": "3EZ2uTdVDAMFXTfc6uLDDKR6o8qKBZXVkj",
			"pay_amount": 0.0012,
			"expiration_estimate_date": "2026-08-31T12:00:00Z"
		}`))
	}))
	defer srv.Close()

	f := NewPaymentsFacade(srv.URL, "test-api-key", "https://bot.example.com/webhook/payments")
	inv, err := f.CreatePayment(context.Background(), 50.0, "btc", "deposit_7_abc", 7)
	require.NoError(t, err)
	assert.Equal(t, "5077125051", inv.PaymentID)
	assert.Equal(t, "3EZ2uTdVDAMFXTfc6uLDDKR6o8qKBZXVkj", inv.PayAddress)
	assert.Equal(t, 0.0012, inv.PayAmount)
	assert.Equal(t, "2026-08-31T12:00:00Z", inv.ExpirationEstimate)
}

func TestCreatePayment_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Invalid api key"}`))
	}))
	defer srv.Close()

	f := NewPaymentsFacade(srv.URL, "bad-key", "https://bot.example.com/webhook/payments")
	inv, err := f.CreatePayment(context.Background(), 50.0, "btc", "deposit_7_abc", 7)
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Contains(t, err.Error(), "403")
}

func TestGetCurrencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currencies", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		_, _ = w.Write([]byte(`{"currencies": ["btc", "eth", "ltc"]}`))
	}))
	defer srv.Close()

	f := NewPaymentsFacade(srv.URL, "test-api-key", "")
	currencies, err := f.GetCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"btc", "eth", "ltc"}, currencies)
}

func TestGetMinAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/min-amount", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("currency_from"))
		assert.Equal(t, "xmr", r.URL.Query().Get("currency_to"))
		_, _ = w.Write([]byte(`{"min_amount": 11.5}`))
	}))
	defer srv.Close()

	f := NewPaymentsFacade(srv.URL, "test-api-key", "")
	min, err := f.GetMinAmount(context.Background(), "xmr")
	require.NoError(t, err)
	assert.Equal(t, 11.5, min)
}
