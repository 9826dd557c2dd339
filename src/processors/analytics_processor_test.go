package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/confirmdesk/backend/src/models"
)

func equityWithStatus(id, status string) models.EquityTrade {
	return models.EquityTrade{TradeID: id, ConfirmationStatus: status}
}

func TestAggregateEmptyCollection(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	for _, dimension := range []Dimension{DimensionWorkflowStage, DimensionNextActionOwner, DimensionCurrentStage, DimensionStatus} {
		buckets := processor.Aggregate(nil, dimension)
		require.NotEmpty(t, buckets, "dimension %s", dimension)
		for _, bucket := range buckets {
			assert.Equal(t, 0, bucket.Value, "bucket %s", bucket.Name)
			assert.Equal(t, 0.0, bucket.Percentage, "bucket %s", bucket.Name)
		}
	}
}

func TestAggregateWorkflowStages(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine([]models.EquityTrade{
		equityWithStatus("E1", "Settled"),
		equityWithStatus("E2", "Confirmed"),
		equityWithStatus("E3", "confirmed"),
		equityWithStatus("E4", "Failed"),
	}, nil)

	buckets := processor.Aggregate(trades, DimensionWorkflowStage)
	require.Len(t, buckets, len(models.WorkflowStages))

	byName := make(map[string]models.Bucket, len(buckets))
	for i, bucket := range buckets {
		assert.Equal(t, models.WorkflowStages[i].Name, bucket.Name)
		byName[bucket.Name] = bucket
	}
	assert.Equal(t, 1, byName["Post-Settlement"].Value)
	assert.Equal(t, 2, byName["Counterparty Matching"].Value)
	assert.Equal(t, 1, byName["Exception Handling"].Value)
	assert.Equal(t, 0, byName["Trade Capture"].Value)
	assert.Equal(t, 50.0, byName["Counterparty Matching"].Percentage)
}

func TestAggregateValuesAndPercentagesSum(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine([]models.EquityTrade{
		equityWithStatus("E1", "Pending"),
		equityWithStatus("E2", "Booked"),
		equityWithStatus("E3", "Disputed"),
		equityWithStatus("E4", "mystery-status"),
		equityWithStatus("E5", "Cancelled"),
	}, nil)

	for _, dimension := range []Dimension{DimensionWorkflowStage, DimensionNextActionOwner, DimensionCurrentStage, DimensionStatus} {
		buckets := processor.Aggregate(trades, dimension)
		valueSum := 0
		percentageSum := 0.0
		for _, bucket := range buckets {
			valueSum += bucket.Value
			percentageSum += bucket.Percentage
		}
		if dimension == DimensionWorkflowStage || dimension == DimensionStatus {
			assert.Equal(t, len(trades), valueSum, "dimension %s", dimension)
			assert.InDelta(t, 100.0, percentageSum, 1e-9, "dimension %s", dimension)
		}
	}
}

func TestAggregateStatusDistributionUnknownCountsAsPending(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine([]models.EquityTrade{
		equityWithStatus("E1", "amended"),
		equityWithStatus("E2", "PENDING"),
	}, nil)

	buckets := processor.Aggregate(trades, DimensionStatus)
	for _, bucket := range buckets {
		if bucket.Name == "Pending" {
			assert.Equal(t, 2, bucket.Value)
			return
		}
	}
	t.Fatal("Pending bucket missing from status distribution")
}

func TestSummary(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine([]models.EquityTrade{
		equityWithStatus("E1", "Settled"),
		equityWithStatus("E2", "Confirmed"),
		equityWithStatus("E3", "Pending"),
	}, nil)

	stats := processor.Summary(trades)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.InProgress)
	assert.InDelta(t, 33.33, stats.CompletionRate, 0.01)
}

func TestSummaryEmpty(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	stats := processor.Summary(nil)
	assert.Equal(t, models.SummaryStats{}, stats)
}

func TestAnalyzeDate(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine([]models.EquityTrade{
		{TradeID: "E1", TradeDate: "2025-07-01", SettlementDate: "2025-07-02"},
		{TradeID: "E2", TradeDate: "2025-07-01", SettlementDate: "2025-07-03"},
		{TradeID: "E3", TradeDate: "2025-07-02", SettlementDate: "2025-07-03"},
	}, nil)

	analysis := processor.AnalyzeDate(trades, "2025-07-01")
	assert.Equal(t, 2, analysis.Registered)
	assert.Equal(t, 1, analysis.ClosedNextDay)

	analysis = processor.AnalyzeDate(trades, "2025-08-01")
	assert.Equal(t, 0, analysis.Registered)
	assert.Equal(t, 0, analysis.ClosedNextDay)

	analysis = processor.AnalyzeDate(trades, "not-a-date")
	assert.Equal(t, 0, analysis.ClosedNextDay)
}

func TestFilterByAssetClass(t *testing.T) {
	processor := NewAnalyticsProcessor(NewStatusClassifier())

	trades := models.Combine(
		[]models.EquityTrade{equityWithStatus("E1", "Settled")},
		[]models.FXTrade{{TradeID: "F1", TradeStatus: "Booked"}, {TradeID: "F2", TradeStatus: "Settled"}},
	)

	assert.Len(t, processor.Filter(trades, FilterAll), 3)
	assert.Len(t, processor.Filter(trades, FilterEquity), 1)
	assert.Len(t, processor.Filter(trades, FilterFX), 2)
}
