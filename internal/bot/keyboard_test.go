package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akosachev/panelshop/internal/models"
)

func TestOffersKeyboard(t *testing.T) {
	offers := []models.Offer{
		{ID: 5, Name: "Basic", Price: 30, DurationDays: 30},
		{ID: 9, Name: "Pro", Price: 75.5, DurationDays: 90},
	}

	kb := offersKeyboard(offers)
	require.Len(t, kb.InlineKeyboard, 3)

	assert.Equal(t, "Basic — $30.00 / 30d", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "offer:5", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "Pro — $75.50 / 90d", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "offer:9", *kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, cbBack, *kb.InlineKeyboard[2][0].CallbackData)
}

func TestCurrenciesKeyboard(t *testing.T) {
	kb := currenciesKeyboard([]string{"btc", "eth", "ltc", "xmr", "doge"})

	// Three per row, the partial row, then the back row.
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 3)
	assert.Len(t, kb.InlineKeyboard[1], 2)
	assert.Equal(t, "cur:btc", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "cur:doge", *kb.InlineKeyboard[1][1].CallbackData)
	assert.Equal(t, cbBack, *kb.InlineKeyboard[2][0].CallbackData)
}

func TestMainMenuKeyboard(t *testing.T) {
	kb := mainMenuKeyboard()
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, cbWallet, *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, cbBuy, *kb.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, cbHistory, *kb.InlineKeyboard[1][0].CallbackData)
}
