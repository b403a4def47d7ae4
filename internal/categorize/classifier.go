package categorize

import (
	"github.com/taxfolio/backend/internal/domain"
)

// ConfidenceLevel bands a numeric confidence score.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "LOW"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceHigh   ConfidenceLevel = "HIGH"
)

// ClassificationResult is the income/expense classification of one imported
// transaction. For income the category is empty: income category assignment
// happens at promotion time, the classifier only scores confidence.
type ClassificationResult struct {
	IsIncome   bool
	Category   domain.ExpenseCategory
	Confidence float64
}

// Level bands the confidence score. The boundaries are asymmetric on
// purpose: exactly 0.90 is medium, exactly 0.60 is medium.
func (r ClassificationResult) Level() ConfidenceLevel {
	switch {
	case r.Confidence > HighConfidenceThreshold:
		return ConfidenceHigh
	case r.Confidence >= MediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IsHighConfidence reports a score strictly above the high threshold.
func (r ClassificationResult) IsHighConfidence() bool {
	return r.Confidence > HighConfidenceThreshold
}

// IsSuggestionWorthy reports a score at or above the medium threshold.
func (r ClassificationResult) IsSuggestionWorthy() bool {
	return r.Confidence >= MediumConfidenceThreshold
}

// RequiresManualReview reports a score below the medium threshold.
func (r ClassificationResult) RequiresManualReview() bool {
	return r.Confidence < MediumConfidenceThreshold
}

// Classifier combines the amount sign with the description categorizer.
type Classifier struct{}

// NewClassifier returns the transaction classification service.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify determines direction from the amount sign and suggests an expense
// category for expenses. Income keeps an empty category and carries only the
// categorizer's confidence.
func (c *Classifier) Classify(tx domain.ImportedTransaction) ClassificationResult {
	if tx.IsIncome() {
		_, confidence := SuggestIncomeCategory(tx.Description)
		return ClassificationResult{IsIncome: true, Confidence: confidence}
	}
	category, confidence := SuggestExpenseCategory(tx.Description)
	return ClassificationResult{IsIncome: false, Category: category, Confidence: confidence}
}
