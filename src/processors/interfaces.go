package processors

import (
	"time"

	"github.com/username/confirmdesk/backend/src/models"
)

// Classification is the full set of workflow labels derived from one
// effective status string.
type Classification struct {
	WorkflowStage    string `json:"workflowStage"`
	CurrentStage     string `json:"currentStage"`
	NextActionOwner  string `json:"nextActionOwner"`
	EscalationBucket string `json:"escalationBucket"`
}

// Escalation bucket / department identifiers.
const (
	BucketLegal        = "legal"
	BucketTrading      = "trading"
	BucketSales        = "sales"
	BucketMiddleOffice = "middleOffice"
	BucketNone         = "none"
)

// TradeFilter restricts an aggregation to one asset class.
type TradeFilter string

const (
	FilterAll    TradeFilter = "all"
	FilterEquity TradeFilter = "equity"
	FilterFX     TradeFilter = "fx"
)

// Dimension selects which classifier label an aggregation buckets by.
type Dimension string

const (
	DimensionWorkflowStage   Dimension = "workflowStage"
	DimensionNextActionOwner Dimension = "nextActionOwner"
	DimensionCurrentStage    Dimension = "currentStage"
	DimensionStatus          Dimension = "status"
)

// StatusClassifier maps an effective status string to its workflow labels.
type StatusClassifier interface {
	Classify(status string) Classification
}

// AnalyticsProcessor computes the chart and card aggregates over a trade
// collection.
type AnalyticsProcessor interface {
	Aggregate(trades []models.Trade, dimension Dimension) []models.Bucket
	Summary(trades []models.Trade) models.SummaryStats
	AnalyzeDate(trades []models.Trade, date string) models.DateAnalysis
	Filter(trades []models.Trade, filter TradeFilter) []models.Trade
}

// EscalationProcessor computes the deterministic pseudo-SLA breach flags.
type EscalationProcessor interface {
	IsEscalated(tradeID, status, department string) bool
	Counts(trades []models.Trade) models.EscalationCounts
	EscalatedTrades(trades []models.Trade, department string) []models.Trade
}

// LifecycleProcessor derives and updates per-trade team lifecycles.
type LifecycleProcessor interface {
	Build(trades []models.Trade, now time.Time) []models.TradeLifecycle
	ApplyUpdate(lifecycles []models.TradeLifecycle, update models.TeamUpdate, now time.Time) []models.TradeLifecycle
}
