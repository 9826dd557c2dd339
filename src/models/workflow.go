package models

// WorkflowStage is one named step of the trade-processing pipeline.
// The stage list is static and read-only, defined at process start.
type WorkflowStage struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// WorkflowStages is the fixed eight-stage pipeline, in pipeline order. Chart
// bucket ordering follows this declaration order.
var WorkflowStages = []WorkflowStage{
	{ID: 1, Name: "Trade Capture", Description: "Initial trade entry and validation", Color: "#3B82F6"},
	{ID: 2, Name: "Trade Enrichment", Description: "Adding additional trade details and references", Color: "#8B5CF6"},
	{ID: 3, Name: "Confirmation Generation", Description: "Creating confirmation documents", Color: "#06B6D4"},
	{ID: 4, Name: "Counterparty Matching", Description: "Matching with counterparty confirmations", Color: "#10B981"},
	{ID: 5, Name: "Exception Handling", Description: "Resolving breaks and discrepancies", Color: "#F59E0B"},
	{ID: 6, Name: "Settlement Preparation", Description: "Preparing for trade settlement", Color: "#EF4444"},
	{ID: 7, Name: "Settlement Processing", Description: "Processing actual settlement", Color: "#84CC16"},
	{ID: 8, Name: "Post-Settlement", Description: "Final reconciliation and reporting", Color: "#6366F1"},
}

// StageNames returns the stage names in declaration order.
func StageNames() []string {
	names := make([]string, len(WorkflowStages))
	for i, s := range WorkflowStages {
		names[i] = s.Name
	}
	return names
}
