package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/confirmdesk/backend/src/models"
)

// Rune-sum day values used below: "A"=0, "C"=2, "D"=3, "E"=4.

func TestIsEscalatedIsDeterministic(t *testing.T) {
	processor := NewEscalationProcessor()

	first := processor.IsEscalated("E", "failed", BucketLegal)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, processor.IsEscalated("E", "failed", BucketLegal))
	}
}

func TestIsEscalatedThresholds(t *testing.T) {
	processor := NewEscalationProcessor()

	tests := []struct {
		name       string
		tradeID    string
		status     string
		department string
		want       bool
	}{
		{"legal failed over threshold", "E", "failed", BucketLegal, true},
		{"legal disputed over threshold", "E", "Disputed", BucketLegal, true},
		{"legal failed at threshold", "D", "failed", BucketLegal, false},
		{"legal wrong status", "E", "pending", BucketLegal, false},
		{"trading pending over threshold", "C", "pending", BucketTrading, true},
		{"trading pending at threshold", "B", "pending", BucketTrading, false},
		{"trading wrong status", "C", "confirmed", BucketTrading, false},
		{"sales confirmed over threshold", "C", "CONFIRMED", BucketSales, true},
		{"sales confirmed under threshold", "A", "confirmed", BucketSales, false},
		{"middle office booked regardless of days", "A", "booked", BucketMiddleOffice, true},
		{"middle office wrong status", "E", "settled", BucketMiddleOffice, false},
		{"unknown department", "E", "failed", "operations", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, processor.IsEscalated(tt.tradeID, tt.status, tt.department))
		})
	}
}

func TestIsEscalatedVariesByTradeID(t *testing.T) {
	processor := NewEscalationProcessor()

	// Same status, different IDs, opposite outcomes.
	assert.True(t, processor.IsEscalated("E", "failed", BucketLegal))
	assert.False(t, processor.IsEscalated("A", "failed", BucketLegal))
}

func TestEscalationCounts(t *testing.T) {
	processor := NewEscalationProcessor()

	trades := models.Combine([]models.EquityTrade{
		{TradeID: "E", ConfirmationStatus: "Failed"},    // legal, days 4
		{TradeID: "A", ConfirmationStatus: "Disputed"},  // legal candidate, days 0
		{TradeID: "C", ConfirmationStatus: "Pending"},   // trading, days 2
		{TradeID: "D", ConfirmationStatus: "Confirmed"}, // sales, days 3
	}, []models.FXTrade{
		{TradeID: "F", TradeStatus: "Booked"},
		{TradeID: "G", TradeStatus: "Booked"},
	})

	counts := processor.Counts(trades)
	assert.Equal(t, models.EscalationCounts{Legal: 1, Trading: 1, Sales: 1, MiddleOffice: 2}, counts)
}

func TestEscalatedTradesPreservesOrder(t *testing.T) {
	processor := NewEscalationProcessor()

	trades := models.Combine([]models.EquityTrade{
		{TradeID: "E", ConfirmationStatus: "Failed"},
		{TradeID: "A", ConfirmationStatus: "Failed"},
		{TradeID: "J", ConfirmationStatus: "Disputed"}, // "J" = 74, days 4
	}, nil)

	escalated := processor.EscalatedTrades(trades, BucketLegal)
	assert.Len(t, escalated, 2)
	assert.Equal(t, "E", escalated[0].ID())
	assert.Equal(t, "J", escalated[1].ID())
}

func TestSLALabel(t *testing.T) {
	assert.Equal(t, "3 days", SLALabel(BucketLegal))
	assert.Equal(t, "1 day", SLALabel(BucketTrading))
	assert.Equal(t, "1 day", SLALabel(BucketSales))
	assert.Equal(t, "—", SLALabel(BucketMiddleOffice))
	assert.Equal(t, "", SLALabel("operations"))
}
