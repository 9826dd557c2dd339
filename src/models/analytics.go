package models

// Bucket is one chart-ready slice of an aggregation: the bucket name, the
// trade count and its share of the aggregated total.
type Bucket struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// SummaryStats feeds the top-level dashboard cards.
type SummaryStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"inProgress"`
	CompletionRate float64 `json:"completionRate"`
}

// EscalationCounts holds the per-department pseudo-SLA breach counts.
type EscalationCounts struct {
	Legal        int `json:"legal"`
	Trading      int `json:"trading"`
	Sales        int `json:"sales"`
	MiddleOffice int `json:"middleOffice"`
}

// DateAnalysis reports how many trades were registered on a given trade date
// and how many of those settled the following day.
type DateAnalysis struct {
	Date          string `json:"date"`
	Registered    int    `json:"registered"`
	ClosedNextDay int    `json:"closedNextDay"`
}
