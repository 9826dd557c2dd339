package models

// Team status values used by the lifecycle tracker.
const (
	TeamStatusPending    = "pending"
	TeamStatusInProgress = "in-progress"
	TeamStatusCompleted  = "completed"
	TeamStatusFailed     = "failed"
)

// LifecycleTeams lists the operations teams that touch a trade, in pipeline
// order. The most advanced completed team determines the current stage.
var LifecycleTeams = []string{
	"costManagement",
	"networkManagement",
	"referenceData",
	"collateralManagement",
	"confirmations",
	"settlements",
	"regulatoryAdherence",
	"middleOffice",
}

// TeamData is one team's view of a trade.
type TeamData struct {
	TeamName    string            `json:"teamName"`
	Status      string            `json:"status"`
	LastUpdated string            `json:"lastUpdated"`
	Data        map[string]string `json:"data"`
	Notes       string            `json:"notes"`
}

// TradeLifecycle tracks the per-team progress of a single trade.
type TradeLifecycle struct {
	TradeID      string              `json:"tradeId"`
	CurrentStage string              `json:"currentStage"`
	Teams        map[string]TeamData `json:"teams"`
	CreatedAt    string              `json:"createdAt"`
	LastModified string              `json:"lastModified"`
}

// TeamUpdate is an externally supplied change to one team's status.
type TeamUpdate struct {
	TradeID  string            `json:"tradeId"`
	TeamName string            `json:"teamName"`
	Status   string            `json:"status"`
	Data     map[string]string `json:"data"`
	Notes    string            `json:"notes"`
}
