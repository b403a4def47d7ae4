package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReviewStatus is the staging lifecycle of an imported transaction.
// Transitions are one-way from Pending; nothing returns to Pending.
type ReviewStatus string

const (
	ReviewStatusPending     ReviewStatus = "PENDING"
	ReviewStatusCategorized ReviewStatus = "CATEGORIZED"
	ReviewStatusExcluded    ReviewStatus = "EXCLUDED"
	ReviewStatusSkipped     ReviewStatus = "SKIPPED"
)

// BusinessFlag is the tri-state business/personal marker. Unset means the
// user has not decided yet; it is an explicit variant, not a nil sentinel.
type BusinessFlag string

const (
	BusinessFlagUnset    BusinessFlag = "UNSET"
	BusinessFlagBusiness BusinessFlag = "BUSINESS"
	BusinessFlagPersonal BusinessFlag = "PERSONAL"
)

// ErrInvalidTransition is returned when a review-status change is attempted
// from a non-Pending state.
var ErrInvalidTransition = errors.New("invalid review status transition")

// BankTransaction is the persisted staging row for the review workflow. It
// survives across review, unlike the transient ImportedTransaction.
type BankTransaction struct {
	ID                string
	BusinessID        string
	ImportAuditID     string
	SourceFormatID    string
	Date              time.Time
	Amount            decimal.Decimal
	Description       string
	AccountLastFour   string
	BankTransactionID string
	TransactionHash   string
	ReviewStatus      ReviewStatus
	IncomeID          string
	ExpenseID         string
	ExclusionReason   ExclusionReason
	BusinessFlag      BusinessFlag
	ConfidenceScore   float64
	SuggestedCategory ExpenseCategory
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
	DeletedBy         string
	DeletionReason    string
}

// NewBankTransaction stages an imported transaction for review.
func NewBankTransaction(id, businessID, importAuditID, sourceFormatID string, tx ImportedTransaction, now time.Time) (BankTransaction, error) {
	hash := tx.Hash()
	if hash == "" {
		return BankTransaction{}, errors.New("bank transaction: hash is required")
	}
	return BankTransaction{
		ID:                id,
		BusinessID:        businessID,
		ImportAuditID:     importAuditID,
		SourceFormatID:    sourceFormatID,
		Date:              tx.Date,
		Amount:            tx.Amount,
		Description:       tx.Description,
		AccountLastFour:   tx.AccountLastFour,
		BankTransactionID: tx.Reference,
		TransactionHash:   hash,
		ReviewStatus:      ReviewStatusPending,
		BusinessFlag:      BusinessFlagUnset,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// IsDeleted reports whether the row is soft-deleted.
func (b BankTransaction) IsDeleted() bool {
	return b.DeletedAt != nil
}

// Validate enforces the staging invariants.
func (b BankTransaction) Validate() error {
	if b.TransactionHash == "" {
		return errors.New("bank transaction: hash must not be blank")
	}
	if b.ReviewStatus == ReviewStatusCategorized {
		if (b.IncomeID == "") == (b.ExpenseID == "") {
			return errors.New("bank transaction: categorized requires exactly one of income or expense id")
		}
	}
	if b.ReviewStatus == ReviewStatusExcluded && b.ExclusionReason == "" {
		return errors.New("bank transaction: excluded requires a reason")
	}
	return nil
}

func (b BankTransaction) transitionFromPending() error {
	if b.ReviewStatus != ReviewStatusPending {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, b.ReviewStatus)
	}
	return nil
}

// WithCategorizedIncome promotes the row to Categorized with an income link.
func (b BankTransaction) WithCategorizedIncome(incomeID string, now time.Time) (BankTransaction, error) {
	if err := b.transitionFromPending(); err != nil {
		return BankTransaction{}, err
	}
	b.ReviewStatus = ReviewStatusCategorized
	b.IncomeID = incomeID
	b.UpdatedAt = now
	return b, b.Validate()
}

// WithCategorizedExpense promotes the row to Categorized with an expense link.
func (b BankTransaction) WithCategorizedExpense(expenseID string, now time.Time) (BankTransaction, error) {
	if err := b.transitionFromPending(); err != nil {
		return BankTransaction{}, err
	}
	b.ReviewStatus = ReviewStatusCategorized
	b.ExpenseID = expenseID
	b.UpdatedAt = now
	return b, b.Validate()
}

// WithExcluded marks the row as a non-taxable cash movement.
func (b BankTransaction) WithExcluded(reason ExclusionReason, now time.Time) (BankTransaction, error) {
	if err := b.transitionFromPending(); err != nil {
		return BankTransaction{}, err
	}
	b.ReviewStatus = ReviewStatusExcluded
	b.ExclusionReason = reason
	b.UpdatedAt = now
	return b, b.Validate()
}

// WithSkipped marks the row as reviewed and deliberately ignored.
func (b BankTransaction) WithSkipped(now time.Time) (BankTransaction, error) {
	if err := b.transitionFromPending(); err != nil {
		return BankTransaction{}, err
	}
	b.ReviewStatus = ReviewStatusSkipped
	b.UpdatedAt = now
	return b, nil
}

// WithSuggestion records the categorization engine's recommendation. It does
// not change the review status; the user confirms via promotion.
func (b BankTransaction) WithSuggestion(category ExpenseCategory, confidence float64, now time.Time) BankTransaction {
	b.SuggestedCategory = category
	b.ConfidenceScore = confidence
	b.UpdatedAt = now
	return b
}

// WithBusinessFlag sets the tri-state business/personal marker. Allowed in
// any review state; flagging is orthogonal to the lifecycle.
func (b BankTransaction) WithBusinessFlag(flag BusinessFlag, now time.Time) BankTransaction {
	b.BusinessFlag = flag
	b.UpdatedAt = now
	return b
}

// WithDeleted soft-deletes the row. Orthogonal to review status.
func (b BankTransaction) WithDeleted(by, reason string, now time.Time) BankTransaction {
	at := now
	b.DeletedAt = &at
	b.DeletedBy = by
	b.DeletionReason = reason
	b.UpdatedAt = now
	return b
}
