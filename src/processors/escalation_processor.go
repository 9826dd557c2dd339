package processors

import (
	"strings"

	"github.com/username/confirmdesk/backend/src/models"
)

// Display SLA durations per department. Middle office is count-only and not
// timed.
var slaLabels = map[string]string{
	BucketLegal:        "3 days",
	BucketTrading:      "1 day",
	BucketSales:        "1 day",
	BucketMiddleOffice: "—",
}

// SLALabel returns the display SLA duration for a department, or "" for
// unknown departments.
func SLALabel(department string) string {
	return slaLabels[department]
}

// escalationProcessorImpl implements the EscalationProcessor interface.
type escalationProcessorImpl struct{}

// NewEscalationProcessor creates a new instance of EscalationProcessor.
func NewEscalationProcessor() EscalationProcessor {
	return &escalationProcessorImpl{}
}

// pseudoDays stands in for elapsed days since the trade needed action. It is
// a hash of the trade ID, not a clock, so the same trade always produces the
// same value within and across runs. The real elapsed-time source is not
// available in this system.
func pseudoDays(tradeID string) int {
	hash := 0
	for _, r := range tradeID {
		hash += int(r)
	}
	return hash % 5
}

// IsEscalated reports whether a trade breaches the given department's
// pseudo-SLA. Pure: depends only on its arguments.
func (p *escalationProcessorImpl) IsEscalated(tradeID, status, department string) bool {
	statusLower := strings.ToLower(status)
	days := pseudoDays(tradeID)
	switch department {
	case BucketLegal:
		return (statusLower == "failed" || statusLower == "disputed") && days > 3
	case BucketTrading:
		return statusLower == "pending" && days > 1
	case BucketSales:
		return statusLower == "confirmed" && days > 1
	case BucketMiddleOffice:
		// Count-only: every booked trade shows up, no day threshold.
		return statusLower == "booked"
	default:
		return false
	}
}

// Counts tallies pseudo-SLA breaches per department over a collection.
func (p *escalationProcessorImpl) Counts(trades []models.Trade) models.EscalationCounts {
	var counts models.EscalationCounts
	for _, trade := range trades {
		switch strings.ToLower(trade.EffectiveStatus()) {
		case "failed", "disputed":
			if pseudoDays(trade.ID()) > 3 {
				counts.Legal++
			}
		case "pending":
			if pseudoDays(trade.ID()) > 1 {
				counts.Trading++
			}
		case "confirmed":
			if pseudoDays(trade.ID()) > 1 {
				counts.Sales++
			}
		case "booked":
			counts.MiddleOffice++
		}
	}
	return counts
}

// EscalatedTrades lists the trades in breach for one department, preserving
// collection order.
func (p *escalationProcessorImpl) EscalatedTrades(trades []models.Trade, department string) []models.Trade {
	var escalated []models.Trade
	for _, trade := range trades {
		if p.IsEscalated(trade.ID(), trade.EffectiveStatus(), department) {
			escalated = append(escalated, trade)
		}
	}
	return escalated
}
