package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akosachev/panelshop/internal/models"
)

// Callback data prefixes. Everything after the colon is an argument.
const (
	cbWallet  = "wallet"
	cbBuy     = "buy"
	cbHistory = "history"
	cbDeposit = "deposit"
	cbBack    = "back"

	cbOfferPrefix    = "offer:"
	cbCurrencyPrefix = "cur:"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Wallet", cbWallet),
			tgbotapi.NewInlineKeyboardButtonData("🛒 Buy hosting", cbBuy),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📜 History", cbHistory),
		),
	)
}

func walletKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Deposit", cbDeposit),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", cbBack),
		),
	)
}

func offersKeyboard(offers []models.Offer) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(offers)+1)
	for _, o := range offers {
		label := fmt.Sprintf("%s — $%.2f / %dd", o.Name, o.Price, o.DurationDays)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", cbOfferPrefix, o.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", cbBack),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func currenciesKeyboard(currencies []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(currencies)/3+2)
	row := make([]tgbotapi.InlineKeyboardButton, 0, 3)
	for _, c := range currencies {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c, cbCurrencyPrefix+c))
		if len(row) == 3 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = make([]tgbotapi.InlineKeyboardButton, 0, 3)
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", cbBack),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
