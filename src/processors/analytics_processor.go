package processors

import (
	"strings"

	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/utils"
)

// Bucket name lists per dimension, in the fixed order charts render them.
// Declaration order, not first-occurrence order, so renders are stable
// across runs.
var (
	nextActionOwnerBuckets = []string{"Settlements", "Trading", "Sales", "Legal", "Completed"}
	currentStageBuckets    = []string{"Matching", "Drafting", "Pending", "CCNR"}
	statusBuckets          = []string{"Confirmed", "Settled", "Failed", "Disputed", "Pending", "Booked", "Cancelled"}
)

// analyticsProcessorImpl implements the AnalyticsProcessor interface.
type analyticsProcessorImpl struct {
	classifier StatusClassifier
}

// NewAnalyticsProcessor creates a new instance of AnalyticsProcessor.
func NewAnalyticsProcessor(classifier StatusClassifier) AnalyticsProcessor {
	return &analyticsProcessorImpl{classifier: classifier}
}

// Aggregate counts trades per bucket of the given dimension. Every declared
// bucket appears in the result, including empty ones, and percentages are
// 0.0 (never NaN) on an empty collection.
func (p *analyticsProcessorImpl) Aggregate(trades []models.Trade, dimension Dimension) []models.Bucket {
	names, label := p.dimension(dimension)

	counts := make(map[string]int, len(names))
	for _, trade := range trades {
		counts[label(trade.EffectiveStatus())]++
	}

	total := len(trades)
	buckets := make([]models.Bucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, models.Bucket{
			Name:       name,
			Value:      counts[name],
			Percentage: utils.Percentage(counts[name], total),
		})
	}
	return buckets
}

// dimension resolves a Dimension to its declared bucket list and the
// status-to-bucket label function.
func (p *analyticsProcessorImpl) dimension(dimension Dimension) ([]string, func(status string) string) {
	switch dimension {
	case DimensionNextActionOwner:
		return nextActionOwnerBuckets, func(status string) string {
			return p.classifier.Classify(status).NextActionOwner
		}
	case DimensionCurrentStage:
		return currentStageBuckets, func(status string) string {
			return p.classifier.Classify(status).CurrentStage
		}
	case DimensionStatus:
		return statusBuckets, rawStatusBucket
	default:
		return models.StageNames(), func(status string) string {
			return p.classifier.Classify(status).WorkflowStage
		}
	}
}

// rawStatusBucket canonicalizes the raw status string into its display
// bucket. Unknown statuses count as Pending, mirroring the classifier's
// fail-open default.
func rawStatusBucket(status string) string {
	switch strings.ToLower(status) {
	case "confirmed":
		return "Confirmed"
	case "settled":
		return "Settled"
	case "failed":
		return "Failed"
	case "disputed":
		return "Disputed"
	case "booked":
		return "Booked"
	case "cancelled":
		return "Cancelled"
	default:
		return "Pending"
	}
}

// Summary computes the top-level card statistics. A trade is completed when
// its effective status is settled, case-insensitively.
func (p *analyticsProcessorImpl) Summary(trades []models.Trade) models.SummaryStats {
	stats := models.SummaryStats{Total: len(trades)}
	for _, trade := range trades {
		if strings.ToLower(trade.EffectiveStatus()) == "settled" {
			stats.Completed++
		}
	}
	stats.InProgress = stats.Total - stats.Completed
	stats.CompletionRate = utils.Percentage(stats.Completed, stats.Total)
	return stats
}

// AnalyzeDate counts the trades registered on the given trade date and, of
// those, the ones that settled the next day.
func (p *analyticsProcessorImpl) AnalyzeDate(trades []models.Trade, date string) models.DateAnalysis {
	analysis := models.DateAnalysis{Date: date}
	if date == "" {
		return analysis
	}
	nextDay := utils.NextDay(date)
	for _, trade := range trades {
		if trade.TradeDay() != date {
			continue
		}
		analysis.Registered++
		if nextDay != "" && trade.SettlementDay() == nextDay {
			analysis.ClosedNextDay++
		}
	}
	return analysis
}

// Filter restricts a collection to one asset class.
func (p *analyticsProcessorImpl) Filter(trades []models.Trade, filter TradeFilter) []models.Trade {
	if filter == FilterAll || filter == "" {
		return trades
	}
	var filtered []models.Trade
	for _, trade := range trades {
		if (filter == FilterEquity && trade.Class() == models.AssetClassEquity) ||
			(filter == FilterFX && trade.Class() == models.AssetClassFX) {
			filtered = append(filtered, trade)
		}
	}
	return filtered
}
