package categorize

import (
	"time"

	"github.com/taxfolio/backend/internal/domain"
)

// Recommendation is the engine's combined verdict for one transaction.
// Classification fields are populated even when the transaction is excluded,
// for audit display; they are informational only in that case.
type Recommendation struct {
	Classification  ClassificationResult
	ShouldExclude   bool
	ExclusionReason domain.ExclusionReason
	// SA103Box is resolved independently of exclusion status so excluded
	// transactions still display the box they would have filed under.
	SA103Box string
}

// Engine orchestrates exclusion rules and classification into a single
// recommendation per transaction.
type Engine struct {
	exclusions *Exclusions
	classifier *Classifier
}

// NewEngine returns the categorization engine.
func NewEngine() *Engine {
	return &Engine{
		exclusions: NewExclusions(),
		classifier: NewClassifier(),
	}
}

// Recommend runs exclusion rules first, then classification.
func (e *Engine) Recommend(tx domain.ImportedTransaction) Recommendation {
	excluded, reason := e.exclusions.Evaluate(tx)
	classification := e.classifier.Classify(tx)
	return Recommendation{
		Classification:  classification,
		ShouldExclude:   excluded,
		ExclusionReason: reason,
		SA103Box:        domain.SA103Box(classification.Category),
	}
}

// Apply writes a recommendation onto a staged bank transaction. This is the
// sole mutation boundary between the ephemeral recommendation and persisted
// state: suggestion fields are stamped, and excluded transactions move to
// the Excluded status. Everything else stays Pending for user review.
func (e *Engine) Apply(bt domain.BankTransaction, rec Recommendation, now time.Time) (domain.BankTransaction, error) {
	bt = bt.WithSuggestion(rec.Classification.Category, rec.Classification.Confidence, now)
	if rec.ShouldExclude {
		return bt.WithExcluded(rec.ExclusionReason, now)
	}
	return bt, nil
}
