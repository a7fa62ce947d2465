package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	default:
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Unknown command. Use /start.")
		b.send(reply)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.wallet.EnsureUser(ctx, msg.From.ID, msg.From.UserName)
	if err != nil {
		logger.Log.Errorw("failed to ensure user", "user_id", msg.From.ID, "error", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Something went wrong, please try again later."))
		return
	}

	text := fmt.Sprintf("Welcome, %s!\nYour balance: $%.2f\n\nChoose an action:", displayName(msg.From), user.WalletBalance)
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyMarkup = mainMenuKeyboard()
	b.send(reply)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Ack first so the client stops the spinner even if handling is slow.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logger.Log.Warnw("failed to ack callback", "error", err)
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	switch {
	case cb.Data == cbWallet:
		b.showWallet(ctx, chatID, userID)
	case cb.Data == cbBuy:
		b.showOffers(ctx, chatID)
	case cb.Data == cbHistory:
		b.showHistory(ctx, chatID, userID)
	case cb.Data == cbDeposit:
		b.showCurrencies(ctx, chatID, userID)
	case cb.Data == cbBack:
		b.showMainMenu(ctx, chatID, userID)
	case strings.HasPrefix(cb.Data, cbCurrencyPrefix):
		b.startDeposit(ctx, chatID, userID, strings.TrimPrefix(cb.Data, cbCurrencyPrefix))
	case strings.HasPrefix(cb.Data, cbOfferPrefix):
		offerID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbOfferPrefix), 10, 64)
		if err != nil {
			logger.Log.Warnw("bad offer callback", "data", cb.Data)
			return
		}
		b.buyOffer(ctx, chatID, userID, offerID)
	default:
		logger.Log.Warnw("unknown callback", "data", cb.Data)
	}
}

// handleMessage handles free-form text. The only dialog expecting text is the
// deposit amount prompt; everything else gets the main menu back.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	state, err := b.states.Get(ctx, msg.From.ID)
	if err != nil {
		logger.Log.Errorw("failed to load conversation state", "user_id", msg.From.ID, "error", err)
	}
	if state != nil && state.State == models.ConvAwaitingDepositAmount {
		b.handleDepositAmount(ctx, msg, state)
		return
	}
	b.showMainMenu(ctx, msg.Chat.ID, msg.From.ID)
}

func (b *Bot) showMainMenu(ctx context.Context, chatID, userID int64) {
	balance, err := b.wallet.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "user_id", userID, "error", err)
	}
	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Your balance: $%.2f\n\nChoose an action:", balance))
	reply.ReplyMarkup = mainMenuKeyboard()
	b.send(reply)
}

func (b *Bot) showWallet(ctx context.Context, chatID, userID int64) {
	balance, err := b.wallet.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "user_id", userID, "error", err)
		b.send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again later."))
		return
	}
	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("💰 Wallet balance: $%.2f", balance))
	reply.ReplyMarkup = walletKeyboard()
	b.send(reply)
}

func (b *Bot) showOffers(ctx context.Context, chatID int64) {
	offers, err := b.offers.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list offers", "error", err)
		b.send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again later."))
		return
	}
	if len(offers) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "No offers available right now."))
		return
	}
	reply := tgbotapi.NewMessage(chatID, "Available hosting plans:")
	reply.ReplyMarkup = offersKeyboard(offers)
	b.send(reply)
}

func (b *Bot) showHistory(ctx context.Context, chatID, userID int64) {
	history, err := b.wallet.GetHistory(ctx, userID, 10)
	if err != nil {
		logger.Log.Errorw("failed to get history", "user_id", userID, "error", err)
		b.send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again later."))
		return
	}
	if len(history) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "No transactions yet."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Last transactions:\n\n")
	for _, txn := range history {
		sb.WriteString(fmt.Sprintf("%s  %-10s  %+.2f\n",
			txn.Timestamp.Format("2006-01-02 15:04"), txn.Type, txn.Amount))
	}
	b.send(tgbotapi.NewMessage(chatID, sb.String()))
}

func (b *Bot) showCurrencies(ctx context.Context, chatID, userID int64) {
	currencies, err := b.currencies.GetCurrencies(ctx)
	if err != nil || len(currencies) == 0 {
		currencies, err = b.payments.GetCurrencies(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get currencies", "error", err)
			b.send(tgbotapi.NewMessage(chatID, "Payment provider is unavailable, please try again later."))
			return
		}
		if cacheErr := b.currencies.SetCurrencies(ctx, currencies); cacheErr != nil {
			logger.Log.Warnw("failed to cache currencies", "error", cacheErr)
		}
	}

	reply := tgbotapi.NewMessage(chatID, "Pick a deposit currency:")
	reply.ReplyMarkup = currenciesKeyboard(currencies)
	b.send(reply)
}

func (b *Bot) startDeposit(ctx context.Context, chatID, userID int64, currency string) {
	state := models.ConversationState{
		State:    models.ConvAwaitingDepositAmount,
		Currency: currency,
		OrderID:  services.BuildOrderID(userID),
	}
	if err := b.states.Set(ctx, userID, state); err != nil {
		logger.Log.Errorw("failed to save conversation state", "user_id", userID, "error", err)
		b.send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again later."))
		return
	}
	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Enter the deposit amount in USD (you will pay in %s):", strings.ToUpper(currency))))
}

func (b *Bot) handleDepositAmount(ctx context.Context, msg *tgbotapi.Message, state *models.ConversationState) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	amount, err := strconv.ParseFloat(strings.TrimSpace(msg.Text), 64)
	if err != nil || amount <= 0 {
		b.send(tgbotapi.NewMessage(chatID, "Please enter a positive number, e.g. 25."))
		return
	}

	minAmount, err := b.payments.GetMinAmount(ctx, state.Currency)
	if err != nil {
		logger.Log.Warnw("failed to get min amount", "currency", state.Currency, "error", err)
	} else if amount < minAmount {
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Minimum deposit for %s is $%.2f.", strings.ToUpper(state.Currency), minAmount)))
		return
	}

	invoice, err := b.payments.CreatePayment(ctx, amount, state.Currency, state.OrderID, userID)
	if err != nil {
		logger.Log.Errorw("failed to create payment", "user_id", userID, "error", err)
		b.send(tgbotapi.NewMessage(chatID, "Payment provider is unavailable, please try again later."))
		return
	}

	if err := b.states.Clear(ctx, userID); err != nil {
		logger.Log.Warnw("failed to clear conversation state", "user_id", userID, "error", err)
	}

	text := fmt.Sprintf(
		"Send exactly %v %s to:\n\n`%s`\n\nYour balance will be credited automatically after confirmation.",
		invoice.PayAmount, strings.ToUpper(state.Currency), invoice.PayAddress,
	)
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	b.send(reply)
}

func (b *Bot) buyOffer(ctx context.Context, chatID, userID, offerID int64) {
	result, err := b.purchases.Purchase(ctx, userID, offerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientFunds):
			b.send(tgbotapi.NewMessage(chatID, "Not enough balance. Top up your wallet first."))
		case errors.Is(err, services.ErrOfferNotFound):
			b.send(tgbotapi.NewMessage(chatID, "This offer is no longer available."))
		case errors.Is(err, services.ErrPostProvisionDebitFailed):
			// Account exists but the charge did not go through; the operator
			// will sort it out from the reconciliation queue.
			b.send(tgbotapi.NewMessage(chatID, "Your account was created but the payment could not be completed. Support will contact you."))
		case errors.Is(err, services.ErrProvisioningFailed):
			b.send(tgbotapi.NewMessage(chatID, "The hosting panel is unavailable, please try again later. You have not been charged."))
		default:
			logger.Log.Errorw("purchase failed", "user_id", userID, "offer_id", offerID, "error", err)
			b.send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again later."))
		}
		return
	}

	var text string
	if result.Upgraded {
		text = fmt.Sprintf("✅ Your subscription was switched to %s.\nValid until %s.",
			result.PlanName, result.ExpiresAt.Format(time.DateOnly))
	} else {
		text = fmt.Sprintf(
			"✅ Hosting account created!\n\nPlan: %s\nValid until: %s\n\nLogin: `%s`\nPassword: `%s`\nDomain: %s",
			result.PlanName, result.ExpiresAt.Format(time.DateOnly),
			result.Credentials.Username, result.Credentials.Password, result.Credentials.Domain,
		)
	}
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	b.send(reply)
}

func displayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return "@" + u.UserName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return strconv.FormatInt(u.ID, 10)
}
