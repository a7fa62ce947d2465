package facades

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

const (
	panelRequestTimeout = 10 * time.Second
	panelMaxAttempts    = 3
)

// PanelFacade is the hosting control panel's REST client: basic auth over
// HTTPS, JSON bodies, bounded retries. Rate-limited responses (429) are
// retried with exponential backoff; any other 4xx is a validation failure
// and fails immediately.
type PanelFacade struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// NewPanelFacade creates a client for the panel at host (v2 API).
func NewPanelFacade(host, username, password string) *PanelFacade {
	return &PanelFacade{
		baseURL:  fmt.Sprintf("https://%s/api/v2", host),
		username: username,
		password: password,
		client:   &http.Client{Timeout: panelRequestTimeout},
	}
}

// request performs one panel call with retries. The result is decoded into
// out when out is non-nil.
func (f *PanelFacade) request(ctx context.Context, method, endpoint string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("panel: marshal request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < panelMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, f.baseURL+endpoint, reqBody)
		if err != nil {
			return fmt.Errorf("panel: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth(f.username, f.password)

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			logger.Log.Warnw("panel request failed", "method", method, "endpoint", endpoint, "attempt", attempt+1, "error", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("panel: rate limited (429)")
			logger.Log.Warnw("panel rate limited", "endpoint", endpoint, "attempt", attempt+1)
			continue
		}
		if resp.StatusCode >= 400 {
			data, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("panel: %s %s: status %d: %s", method, endpoint, resp.StatusCode, bytes.TrimSpace(data))
		}

		if out != nil {
			err = json.NewDecoder(resp.Body).Decode(out)
		}
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("panel: decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("panel: request failed after %d attempts: %w", panelMaxAttempts, lastErr)
}

// ClientExists checks whether a client id is still present in the panel.
func (f *PanelFacade) ClientExists(ctx context.Context, clientID int64) bool {
	err := f.request(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", clientID), nil, nil)
	return err == nil
}

// CreateClient creates a panel client with generated credentials. When email
// is empty a placeholder address derived from the login is used.
func (f *PanelFacade) CreateClient(ctx context.Context, email string) (*models.PanelClient, error) {
	username := randomString(8, alphanumeric)
	password := randomString(12, alphanumeric+"!@#$%^&*")
	if email == "" {
		email = username + "@example.com"
	}

	body := map[string]any{
		"name":     username,
		"login":    username,
		"password": password,
		"email":    email,
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := f.request(ctx, http.MethodPost, "/clients", body, &resp); err != nil {
		return nil, err
	}
	return &models.PanelClient{
		ExternalClientID: resp.ID,
		Username:         username,
		Password:         password,
	}, nil
}

// CreateSubscription creates a hosting subscription owned by clientID on the
// given service plan. A temporary domain is generated when none is supplied.
func (f *PanelFacade) CreateSubscription(ctx context.Context, clientID, planID int64, domain string) (*models.PanelSubscription, error) {
	if domain == "" {
		domain = fmt.Sprintf("temp-%04d.example.com", randomInt(10000))
	}

	body := map[string]any{
		"name":         domain,
		"service_plan": map[string]any{"id": planID},
		"hosting_type": "virtual",
		"owner_client": map[string]any{"id": clientID},
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := f.request(ctx, http.MethodPost, "/subscriptions", body, &resp); err != nil {
		return nil, err
	}
	return &models.PanelSubscription{
		SubscriptionID: resp.ID,
		Domain:         domain,
	}, nil
}

// UpdateSubscription moves a subscription to another service plan.
func (f *PanelFacade) UpdateSubscription(ctx context.Context, subscriptionID, newPlanID int64) error {
	body := map[string]any{
		"service_plan": map[string]any{"id": newPlanID},
	}
	return f.request(ctx, http.MethodPut, fmt.Sprintf("/subscriptions/%d", subscriptionID), body, nil)
}

// DeleteClient removes a client and everything it owns.
func (f *PanelFacade) DeleteClient(ctx context.Context, clientID int64) error {
	return f.request(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", clientID), nil, nil)
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomString draws n characters from charset using crypto/rand; these end
// up as account credentials.
func randomString(n int, charset string) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = charset[randomInt(len(charset))]
	}
	return string(out)
}

func randomInt(max int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken
		panic(err)
	}
	return int(v.Int64())
}
