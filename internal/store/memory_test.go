package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/backend/internal/dedup"
	"github.com/taxfolio/backend/internal/domain"
)

var testDate = time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)

func stagedTransaction(t *testing.T, id, businessID, description, amount string) domain.BankTransaction {
	t.Helper()
	tx, err := domain.NewImportedTransaction(testDate, decimal.RequireFromString(amount), description, nil, "")
	require.NoError(t, err)
	bt, err := domain.NewBankTransaction(id, businessID, "audit-1", "Barclays", tx, testDate)
	require.NoError(t, err)
	return bt
}

func TestIncomeCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	income := &domain.Income{BusinessID: "biz-1", Date: testDate, Amount: decimal.RequireFromString("100.00"), Description: "INVOICE 12"}
	require.NoError(t, s.CreateIncome(ctx, income))
	assert.NotEmpty(t, income.ID, "create assigns an ID when blank")

	require.NoError(t, s.DeleteIncome(ctx, income.ID))
	assert.ErrorIs(t, s.DeleteIncome(ctx, income.ID), ErrNotFound)
}

func TestExpenseCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	expense := &domain.Expense{BusinessID: "biz-1", Date: testDate, Amount: decimal.RequireFromString("25.50"), Description: "STATIONERY"}
	require.NoError(t, s.CreateExpense(ctx, expense))
	require.NotEmpty(t, expense.ID)

	require.NoError(t, s.DeleteExpense(ctx, expense.ID))
	assert.ErrorIs(t, s.DeleteExpense(ctx, expense.ID), ErrNotFound)
}

func TestBankTransactionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	bt := stagedTransaction(t, "bt-1", "biz-1", "TESCO STORES", "-10.00")
	require.NoError(t, s.CreateBankTransaction(ctx, &bt))

	got, err := s.GetBankTransaction(ctx, "bt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusPending, got.ReviewStatus)

	skipped, err := got.WithSkipped(testDate.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, s.UpdateBankTransaction(ctx, &skipped))

	got, err = s.GetBankTransaction(ctx, "bt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusSkipped, got.ReviewStatus)

	_, err = s.GetBankTransaction(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBankTransactionHidesSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	bt := stagedTransaction(t, "bt-1", "biz-1", "TESCO STORES", "-10.00")
	require.NoError(t, s.CreateBankTransaction(ctx, &bt))

	deleted := bt.WithDeleted("user-1", "duplicate", testDate.Add(time.Hour))
	require.NoError(t, s.UpdateBankTransaction(ctx, &deleted))

	_, err := s.GetBankTransaction(ctx, "bt-1")
	assert.ErrorIs(t, err, ErrNotFound)

	rows, _, err := s.ListBankTransactions(ctx, "biz-1", 10, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListBankTransactionsPagination(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		bt := stagedTransaction(t, fmt.Sprintf("bt-%d", i), "biz-1", "TESCO STORES", "-10.00")
		require.NoError(t, s.CreateBankTransaction(ctx, &bt))
	}
	other := stagedTransaction(t, "bt-other", "biz-2", "TESCO STORES", "-10.00")
	require.NoError(t, s.CreateBankTransaction(ctx, &other))

	page1, token, err := s.ListBankTransactions(ctx, "biz-1", 2, "")
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotEmpty(t, token)

	page2, token, err := s.ListBankTransactions(ctx, "biz-1", 2, token)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotEmpty(t, token)

	page3, token, err := s.ListBankTransactions(ctx, "biz-1", 2, token)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Empty(t, token)

	seen := map[string]bool{}
	for _, bt := range append(append(page1, page2...), page3...) {
		assert.Equal(t, "biz-1", bt.BusinessID)
		seen[bt.ID] = true
	}
	assert.Len(t, seen, 5, "pages are disjoint and complete")

	_, _, err = s.ListBankTransactions(ctx, "biz-1", 2, "not-base64!")
	assert.Error(t, err)
}

func TestImportAuditCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	audit, err := domain.NewImportAudit(domain.ImportAuditParams{
		ID:              "audit-1",
		BusinessID:      "biz-1",
		ImportTimestamp: testDate,
		FileName:        "statement.csv",
		TotalRecords:    3,
		ImportedCount:   2,
		SkippedCount:    1,
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateImportAudit(ctx, audit))

	got, err := s.GetImportAudit(ctx, "audit-1")
	require.NoError(t, err)
	assert.True(t, got.CanUndo())

	undone, err := got.WithUndone("user-1", testDate.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, s.UpdateImportAudit(ctx, undone))

	got, err = s.GetImportAudit(ctx, "audit-1")
	require.NoError(t, err)
	assert.False(t, got.CanUndo())

	_, err = s.GetImportAudit(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	audits, _, err := s.ListImportAudits(ctx, "biz-1", 10, "")
	require.NoError(t, err)
	assert.Len(t, audits, 1)
}

func TestImportAuditReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	audit, err := domain.NewImportAudit(domain.ImportAuditParams{
		ID:              "audit-1",
		BusinessID:      "biz-1",
		ImportTimestamp: testDate,
		FileName:        "statement.csv",
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateImportAudit(ctx, audit))

	// Mutating the caller's value after Create must not leak into the store.
	audit.Status = domain.ImportAuditStatusUndone
	got, err := s.GetImportAudit(ctx, "audit-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportAuditStatusActive, got.Status)

	// Mutating a returned value must not change what the next read sees.
	got.Status = domain.ImportAuditStatusUndone
	again, err := s.GetImportAudit(ctx, "audit-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportAuditStatusActive, again.Status)

	listed, _, err := s.ListImportAudits(ctx, "biz-1", 10, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].Status = domain.ImportAuditStatusUndone
	again, err = s.GetImportAudit(ctx, "audit-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportAuditStatusActive, again.Status)
}

func TestListExistingRecordsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreateIncome(ctx, &domain.Income{
		ID: "inc-1", BusinessID: "biz-1", Date: testDate,
		Amount: decimal.RequireFromString("100.00"), Description: "INVOICE 12",
	}))
	require.NoError(t, s.CreateExpense(ctx, &domain.Expense{
		ID: "exp-1", BusinessID: "biz-1", Date: testDate,
		Amount: decimal.RequireFromString("25.50"), Description: "STATIONERY",
	}))
	bt := stagedTransaction(t, "bt-1", "biz-1", "TESCO STORES", "-10.00")
	require.NoError(t, s.CreateBankTransaction(ctx, &bt))
	otherBiz := stagedTransaction(t, "bt-2", "biz-2", "TESCO STORES", "-10.00")
	require.NoError(t, s.CreateBankTransaction(ctx, &otherBiz))

	records, err := s.ListExistingRecords(ctx, "biz-1")
	require.NoError(t, err)
	require.Len(t, records, 3)

	bySource := map[dedup.Source]dedup.ExistingRecord{}
	for _, rec := range records {
		bySource[rec.Source] = rec
	}

	// Incomes keep their positive sign; expenses are re-signed negative so
	// they compare against signed statement amounts.
	assert.True(t, bySource[dedup.SourceIncome].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, bySource[dedup.SourceExpense].Amount.Equal(decimal.RequireFromString("-25.50")))
	assert.True(t, bySource[dedup.SourceBankTransaction].Amount.Equal(decimal.RequireFromString("-10.00")))
}

func TestPageTokenRoundTrip(t *testing.T) {
	token := EncodePageToken("record-id-42")
	require.NotEmpty(t, token)

	id, err := DecodePageToken(token)
	require.NoError(t, err)
	assert.Equal(t, "record-id-42", id)

	id, err = DecodePageToken("")
	require.NoError(t, err)
	assert.Empty(t, id)
}
