package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 33.33, RoundFloat(33.3333, 2))
	assert.Equal(t, 0.13, RoundFloat(0.125, 2))
	assert.Equal(t, 100.0, RoundFloat(100.0, 2))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 100.0, Percentage(3, 3))
	assert.InDelta(t, 33.333, Percentage(1, 3), 0.001)
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-07-01")
	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())

	_, err = ParseDate("07/01/2025")
	assert.Error(t, err)
}

func TestNextDay(t *testing.T) {
	assert.Equal(t, "2025-07-02", NextDay("2025-07-01"))
	assert.Equal(t, "2025-08-01", NextDay("2025-07-31"))
	assert.Equal(t, "2026-01-01", NextDay("2025-12-31"))
	assert.Equal(t, "", NextDay("not-a-date"))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "£", CurrencySymbol("GBP"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
}
