package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

var (
	// ErrBadSignature is returned when an IPN signature does not match.
	ErrBadSignature = errors.New("invalid ipn signature")
	// ErrBadOrderID is returned when an order id cannot be parsed.
	ErrBadOrderID = errors.New("malformed order id")
)

// WalletCreditor is the slice of the wallet the gateway needs.
type WalletCreditor interface {
	Credit(ctx context.Context, userID int64, amount float64, currency, orderRef string) (float64, error)
}

// IPNService is the payment confirmation gateway: it authenticates inbound
// provider notifications and turns final ones into wallet credits, exactly
// once per order id even though the provider delivers at least once.
type IPNService struct {
	secret []byte
	wallet WalletCreditor
}

// NewIPNService creates a gateway using the shared IPN secret.
func NewIPNService(ipnSecret string, wallet WalletCreditor) *IPNService {
	return &IPNService{secret: []byte(ipnSecret), wallet: wallet}
}

// VerifySignature checks the provider's signature header against an
// HMAC-SHA512 of the payload's canonical form: the body decoded into a map
// and re-encoded, which yields compact JSON with sorted keys. Comparison is
// constant-time.
func (s *IPNService) VerifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	canonical, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New, s.secret)
	mac.Write(canonical)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Apply processes a verified notification. Only "finished" payments mutate
// the wallet; every other status is acknowledged without effect since the
// payment may still change state. A replayed order id is a successful no-op.
func (s *IPNService) Apply(ctx context.Context, n models.PaymentNotification) error {
	if n.PaymentStatus != models.PaymentStatusFinished {
		logger.Log.Infow("ignoring non-final payment notification", "order_id", n.OrderID, "status", n.PaymentStatus)
		return nil
	}

	userID, err := ParseOrderID(n.OrderID)
	if err != nil {
		logger.Log.Errorw("failed to parse order id from notification", "order_id", n.OrderID, "error", err)
		return err
	}

	_, err = s.wallet.Credit(ctx, userID, n.PriceAmount, n.PayCurrency, n.OrderID)
	if errors.Is(err, ErrDuplicateCredit) {
		// Replay of an already-applied webhook; acknowledge it.
		logger.Log.Infow("duplicate payment notification ignored", "order_id", n.OrderID)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Log.Infow("deposit applied", "user_id", userID, "order_id", n.OrderID, "amount", n.PriceAmount, "currency", n.PayCurrency)
	return nil
}

// BuildOrderID creates a deposit order id carrying the user id, with a
// unique suffix so repeated deposits by one user stay distinguishable.
func BuildOrderID(userID int64) string {
	return fmt.Sprintf("deposit_%d_%s", userID, uuid.NewString())
}

// ParseOrderID extracts the user id from a deposit order id.
func ParseOrderID(orderID string) (int64, error) {
	parts := strings.Split(orderID, "_")
	if len(parts) < 3 || parts[0] != "deposit" {
		return 0, ErrBadOrderID
	}
	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrBadOrderID
	}
	return userID, nil
}
