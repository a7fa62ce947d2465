package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

// WalletAPI is the slice of the wallet the bot needs.
type WalletAPI interface {
	EnsureUser(ctx context.Context, userID int64, username string) (models.User, error)
	GetBalance(ctx context.Context, userID int64) (float64, error)
	GetHistory(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
}

// PurchaseAPI runs a subscription purchase for a user.
type PurchaseAPI interface {
	Purchase(ctx context.Context, userID, offerID int64) (*services.PurchaseResult, error)
}

// OfferAPI lists and resolves catalog offers.
type OfferAPI interface {
	List(ctx context.Context) ([]models.Offer, error)
	Get(ctx context.Context, offerID int64) (models.Offer, error)
}

// PaymentsAPI is the payment provider surface driving the deposit flow.
type PaymentsAPI interface {
	CreatePayment(ctx context.Context, amount float64, currency, orderID string, userID int64) (*models.PaymentInvoice, error)
	GetCurrencies(ctx context.Context) ([]string, error)
	GetMinAmount(ctx context.Context, currency string) (float64, error)
}

// StateStore keeps per-user dialog state between updates.
type StateStore interface {
	Set(ctx context.Context, userID int64, state models.ConversationState) error
	Get(ctx context.Context, userID int64) (*models.ConversationState, error)
	Clear(ctx context.Context, userID int64) error
}

// CurrencyCache caches the provider's deposit currency list.
type CurrencyCache interface {
	GetCurrencies(ctx context.Context) ([]string, error)
	SetCurrencies(ctx context.Context, currencies []string) error
}

// Bot is the Telegram front end. It owns no business state: every update is
// dispatched to the wallet, catalog, orchestrator or payment provider and the
// reply is rendered from their results.
type Bot struct {
	api         *tgbotapi.BotAPI
	wallet      WalletAPI
	purchases   PurchaseAPI
	offers      OfferAPI
	payments    PaymentsAPI
	states      StateStore
	currencies  CurrencyCache
	adminChatID int64
}

func New(
	api *tgbotapi.BotAPI,
	wallet WalletAPI,
	purchases PurchaseAPI,
	offers OfferAPI,
	payments PaymentsAPI,
	states StateStore,
	currencies CurrencyCache,
	adminChatID int64,
) *Bot {
	return &Bot{
		api:         api,
		wallet:      wallet,
		purchases:   purchases,
		offers:      offers,
		payments:    payments,
		states:      states,
		currencies:  currencies,
		adminChatID: adminChatID,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	logger.Log.Infow("bot started", "account", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Log.Infow("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// NotifyAdmin sends text to the configured operator chat. Delivery failures
// are logged and dropped; notifications are advisory.
func (b *Bot) NotifyAdmin(text string) {
	if b.adminChatID == 0 {
		return
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(b.adminChatID, text)); err != nil {
		logger.Log.Errorw("failed to notify admin", "error", err)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logger.Log.Errorw("failed to send message", "error", err)
	}
}
