package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAudit(t *testing.T, ids []RecordID) *ImportAudit {
	t.Helper()
	audit, err := NewImportAudit(ImportAuditParams{
		ID:              "audit-1",
		BusinessID:      "biz-1",
		ImportTimestamp: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		FileName:        "biz-1_barclays_20250401.csv",
		FileHash:        "abc123",
		ImportType:      "CSV",
		TotalRecords:    3,
		ImportedCount:   2,
		SkippedCount:    1,
		RecordIDs:       ids,
	})
	require.NoError(t, err)
	return audit
}

func TestNewImportAuditRejectsNegativeCounts(t *testing.T) {
	_, err := NewImportAudit(ImportAuditParams{TotalRecords: -1})
	assert.Error(t, err)
}

func TestRecordIDsAreFrozen(t *testing.T) {
	ids := []RecordID{
		{Kind: RecordKindBankTransaction, ID: "bt-1"},
		{Kind: RecordKindExpense, ID: "exp-1"},
	}
	audit := testAudit(t, ids)

	// Mutating the input slice after construction must not leak in.
	ids[0].ID = "tampered"
	assert.Equal(t, "bt-1", audit.RecordIDs()[0].ID)

	// Mutating the returned slice must not leak back.
	got := audit.RecordIDs()
	got[1].ID = "tampered"
	assert.Equal(t, "exp-1", audit.RecordIDs()[1].ID)
}

func TestRecordIDsPreserveOrder(t *testing.T) {
	ids := []RecordID{
		{Kind: RecordKindBankTransaction, ID: "bt-1"},
		{Kind: RecordKindIncome, ID: "inc-1"},
		{Kind: RecordKindBankTransaction, ID: "bt-2"},
		{Kind: RecordKindExpense, ID: "exp-1"},
	}
	audit := testAudit(t, ids)
	assert.Equal(t, ids, audit.RecordIDs())
}

func TestWithUndone(t *testing.T) {
	audit := testAudit(t, []RecordID{{Kind: RecordKindExpense, ID: "exp-1"}})
	require.True(t, audit.CanUndo())

	at := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	undone, err := audit.WithUndone("user-1", at)
	require.NoError(t, err)

	assert.False(t, undone.CanUndo())
	assert.Equal(t, ImportAuditStatusUndone, undone.Status)
	assert.Equal(t, "user-1", undone.UndoneBy)
	require.NotNil(t, undone.UndoneAt)
	assert.Equal(t, at, *undone.UndoneAt)

	// The import facts never change on undo.
	assert.Equal(t, audit.TotalRecords, undone.TotalRecords)
	assert.Equal(t, audit.ImportedCount, undone.ImportedCount)
	assert.Equal(t, audit.RecordIDs(), undone.RecordIDs())

	// The original value is untouched and a second undo fails.
	assert.True(t, audit.CanUndo())
	_, err = undone.WithUndone("user-2", at)
	assert.ErrorIs(t, err, ErrAlreadyUndone)
}

func TestSA103BoxTable(t *testing.T) {
	assert.Equal(t, "24", SA103Box(ExpenseCategoryAdvertising))
	assert.Equal(t, "19", SA103Box(ExpenseCategoryStaffCosts))
	assert.Equal(t, "26", SA103Box(ExpenseCategoryFinancialCharges))
	assert.Equal(t, "30", SA103Box(ExpenseCategoryOtherExpenses))
	assert.Equal(t, "30", SA103Box(ExpenseCategory("UNKNOWN")), "unknown categories fall back to other expenses")
}
