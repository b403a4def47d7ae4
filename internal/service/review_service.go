package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/domain"
	"github.com/taxfolio/backend/internal/store"
)

// ReviewService applies user review decisions to staged bank transactions.
// Every operation enforces the one-way Pending lifecycle through the domain
// withers; the service never mutates a row directly.
type ReviewService struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewReviewService wires the review workflow.
func NewReviewService(st store.Store, log zerolog.Logger) *ReviewService {
	return &ReviewService{store: st, log: log, now: time.Now}
}

// FlagBusiness sets the business/personal marker on a staged transaction.
// Allowed in any review state.
func (s *ReviewService) FlagBusiness(ctx context.Context, btID string, flag domain.BusinessFlag) (*domain.BankTransaction, error) {
	bt, err := s.store.GetBankTransaction(ctx, btID)
	if err != nil {
		return nil, err
	}
	updated := bt.WithBusinessFlag(flag, s.now())
	if err := s.store.UpdateBankTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("flagging transaction %s: %w", btID, err)
	}
	return &updated, nil
}

// PromoteToIncome confirms a pending staged transaction as income. The
// created record carries the unsigned amount and links back to the staging
// row.
func (s *ReviewService) PromoteToIncome(ctx context.Context, btID string, category domain.IncomeCategory) (*domain.Income, error) {
	bt, err := s.store.GetBankTransaction(ctx, btID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	income := &domain.Income{
		ID:                uuid.New().String(),
		BusinessID:        bt.BusinessID,
		Date:              bt.Date,
		Amount:            bt.Amount.Abs(),
		Description:       bt.Description,
		Category:          category,
		Reference:         bt.BankTransactionID,
		BankTransactionID: bt.ID,
		CreatedAt:         now,
	}

	updated, err := bt.WithCategorizedIncome(income.ID, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("creating income record: %w", err)
	}
	if err := s.store.UpdateBankTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("promoting transaction %s: %w", btID, err)
	}
	s.log.Info().Str("bank_transaction_id", btID).Str("income_id", income.ID).Msg("promoted to income")
	return income, nil
}

// PromoteToExpense confirms a pending staged transaction as an expense.
func (s *ReviewService) PromoteToExpense(ctx context.Context, btID string, category domain.ExpenseCategory) (*domain.Expense, error) {
	bt, err := s.store.GetBankTransaction(ctx, btID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	expense := &domain.Expense{
		ID:                uuid.New().String(),
		BusinessID:        bt.BusinessID,
		Date:              bt.Date,
		Amount:            bt.Amount.Abs(),
		Description:       bt.Description,
		Category:          category,
		BankTransactionID: bt.ID,
		CreatedAt:         now,
	}

	updated, err := bt.WithCategorizedExpense(expense.ID, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("creating expense record: %w", err)
	}
	if err := s.store.UpdateBankTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("promoting transaction %s: %w", btID, err)
	}
	s.log.Info().Str("bank_transaction_id", btID).Str("expense_id", expense.ID).Msg("promoted to expense")
	return expense, nil
}

// Exclude marks a pending staged transaction as a non-taxable cash movement.
func (s *ReviewService) Exclude(ctx context.Context, btID string, reason domain.ExclusionReason) (*domain.BankTransaction, error) {
	bt, err := s.store.GetBankTransaction(ctx, btID)
	if err != nil {
		return nil, err
	}
	updated, err := bt.WithExcluded(reason, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateBankTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("excluding transaction %s: %w", btID, err)
	}
	return &updated, nil
}

// Skip marks a pending staged transaction as reviewed and ignored.
func (s *ReviewService) Skip(ctx context.Context, btID string) (*domain.BankTransaction, error) {
	bt, err := s.store.GetBankTransaction(ctx, btID)
	if err != nil {
		return nil, err
	}
	updated, err := bt.WithSkipped(s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateBankTransaction(ctx, &updated); err != nil {
		return nil, fmt.Errorf("skipping transaction %s: %w", btID, err)
	}
	return &updated, nil
}
