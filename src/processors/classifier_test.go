package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownStatuses(t *testing.T) {
	classifier := NewStatusClassifier()

	tests := []struct {
		status string
		want   Classification
	}{
		{"pending", Classification{"Confirmation Generation", "Pending", "Trading", BucketTrading}},
		{"confirmed", Classification{"Counterparty Matching", "Matching", "Settlements", BucketSales}},
		{"settled", Classification{"Post-Settlement", "CCNR", "Completed", BucketNone}},
		{"failed", Classification{"Exception Handling", "Drafting", "Legal", BucketLegal}},
		{"disputed", Classification{"Exception Handling", "Drafting", "Legal", BucketLegal}},
		{"booked", Classification{"Trade Enrichment", "Matching", "Sales", BucketMiddleOffice}},
		{"cancelled", Classification{"Exception Handling", "Drafting", "Legal", BucketNone}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.status))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	classifier := NewStatusClassifier()

	assert.Equal(t, classifier.Classify("confirmed"), classifier.Classify("CONFIRMED"))
	assert.Equal(t, classifier.Classify("settled"), classifier.Classify("Settled"))
	assert.Equal(t, classifier.Classify("failed"), classifier.Classify("fAiLeD"))
}

func TestClassifyUnknownStatusFallsOpen(t *testing.T) {
	classifier := NewStatusClassifier()

	want := Classification{
		WorkflowStage:    "Trade Capture",
		CurrentStage:     "Pending",
		NextActionOwner:  "Trading",
		EscalationBucket: BucketNone,
	}
	assert.Equal(t, want, classifier.Classify("amended"))
	assert.Equal(t, want, classifier.Classify(""))
	assert.Equal(t, want, classifier.Classify("  settled  "))
}
