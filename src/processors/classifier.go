package processors

import "strings"

// statusClassifierImpl implements the StatusClassifier interface.
type statusClassifierImpl struct{}

// NewStatusClassifier creates a new instance of StatusClassifier.
func NewStatusClassifier() StatusClassifier {
	return &statusClassifierImpl{}
}

// defaultClassification is the fail-open row: any status the table does not
// know lands at the earliest stage with the Trading desk owning next action.
// Unknown statuses are intentional here, not an error.
var defaultClassification = Classification{
	WorkflowStage:    "Trade Capture",
	CurrentStage:     "Pending",
	NextActionOwner:  "Trading",
	EscalationBucket: BucketNone,
}

// classificationTable maps the lowercased effective status to its derived
// labels. Matching is verbatim after lowercasing, no fuzzy matching.
var classificationTable = map[string]Classification{
	"pending":   {WorkflowStage: "Confirmation Generation", CurrentStage: "Pending", NextActionOwner: "Trading", EscalationBucket: BucketTrading},
	"confirmed": {WorkflowStage: "Counterparty Matching", CurrentStage: "Matching", NextActionOwner: "Settlements", EscalationBucket: BucketSales},
	"settled":   {WorkflowStage: "Post-Settlement", CurrentStage: "CCNR", NextActionOwner: "Completed", EscalationBucket: BucketNone},
	"failed":    {WorkflowStage: "Exception Handling", CurrentStage: "Drafting", NextActionOwner: "Legal", EscalationBucket: BucketLegal},
	"disputed":  {WorkflowStage: "Exception Handling", CurrentStage: "Drafting", NextActionOwner: "Legal", EscalationBucket: BucketLegal},
	"booked":    {WorkflowStage: "Trade Enrichment", CurrentStage: "Matching", NextActionOwner: "Sales", EscalationBucket: BucketMiddleOffice},
	"cancelled": {WorkflowStage: "Exception Handling", CurrentStage: "Drafting", NextActionOwner: "Legal", EscalationBucket: BucketNone},
}

// Classify derives the workflow labels for one effective status string.
// Pure and case-insensitive.
func (c *statusClassifierImpl) Classify(status string) Classification {
	if cls, ok := classificationTable[strings.ToLower(status)]; ok {
		return cls
	}
	return defaultClassification
}
