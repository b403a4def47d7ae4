package domain

import (
	"errors"
	"fmt"
	"time"
)

// ImportAuditStatus is the audit lifecycle: Active flips to Undone exactly
// once and never back.
type ImportAuditStatus string

const (
	ImportAuditStatusActive ImportAuditStatus = "ACTIVE"
	ImportAuditStatusUndone ImportAuditStatus = "UNDONE"
)

// ErrAlreadyUndone is returned when undoing an import whose audit is already
// in the Undone state. Distinct from a not-found lookup failure.
var ErrAlreadyUndone = errors.New("import already undone")

// RecordKind identifies what a created record ID points at, so undo knows
// which delete to issue.
type RecordKind string

const (
	RecordKindIncome          RecordKind = "INCOME"
	RecordKindExpense         RecordKind = "EXPENSE"
	RecordKindBankTransaction RecordKind = "BANK_TRANSACTION"
)

// RecordID is one entry in an audit's created-record ledger.
type RecordID struct {
	Kind RecordKind
	ID   string
}

// ImportAudit is the append-only record of one import batch. The import
// facts (counts, record IDs) are frozen at construction; undo produces a new
// value with only the status and undo metadata changed.
type ImportAudit struct {
	ID                    string
	BusinessID            string
	ImportTimestamp       time.Time
	FileName              string
	FileHash              string
	ImportType            string
	TotalRecords          int
	ImportedCount         int
	SkippedCount          int
	Status                ImportAuditStatus
	UndoneAt              *time.Time
	UndoneBy              string
	OriginalFilePath      string
	OriginalFileEncrypted bool
	RetentionUntil        time.Time
	ImportedBy            string

	recordIDs []RecordID
}

// ImportAuditParams carries the construction inputs for an ImportAudit.
type ImportAuditParams struct {
	ID                    string
	BusinessID            string
	ImportTimestamp       time.Time
	FileName              string
	FileHash              string
	ImportType            string
	TotalRecords          int
	ImportedCount         int
	SkippedCount          int
	RecordIDs             []RecordID
	OriginalFilePath      string
	OriginalFileEncrypted bool
	RetentionUntil        time.Time
	ImportedBy            string
}

// NewImportAudit builds an audit record. RecordIDs are defensively copied;
// the caller's slice cannot mutate the audit afterwards. Order is preserved:
// it is the creation order of the batch and is load-bearing for undo.
func NewImportAudit(p ImportAuditParams) (*ImportAudit, error) {
	if p.TotalRecords < 0 || p.ImportedCount < 0 || p.SkippedCount < 0 {
		return nil, errors.New("import audit: counts must be non-negative")
	}
	ids := make([]RecordID, len(p.RecordIDs))
	copy(ids, p.RecordIDs)
	return &ImportAudit{
		ID:                    p.ID,
		BusinessID:            p.BusinessID,
		ImportTimestamp:       p.ImportTimestamp,
		FileName:              p.FileName,
		FileHash:              p.FileHash,
		ImportType:            p.ImportType,
		TotalRecords:          p.TotalRecords,
		ImportedCount:         p.ImportedCount,
		SkippedCount:          p.SkippedCount,
		Status:                ImportAuditStatusActive,
		OriginalFilePath:      p.OriginalFilePath,
		OriginalFileEncrypted: p.OriginalFileEncrypted,
		RetentionUntil:        p.RetentionUntil,
		ImportedBy:            p.ImportedBy,
		recordIDs:             ids,
	}, nil
}

// RecordIDs returns a copy of the created-record ledger in creation order.
func (a *ImportAudit) RecordIDs() []RecordID {
	ids := make([]RecordID, len(a.recordIDs))
	copy(ids, a.recordIDs)
	return ids
}

// CanUndo reports whether the batch is still reversible.
func (a *ImportAudit) CanUndo() bool {
	return a.Status == ImportAuditStatusActive
}

// WithUndone returns a new audit with the status flipped and undo metadata
// recorded. The original import facts are untouched. Fails with
// ErrAlreadyUndone when the batch was reversed before.
func (a *ImportAudit) WithUndone(by string, at time.Time) (*ImportAudit, error) {
	if !a.CanUndo() {
		return nil, fmt.Errorf("%w: audit %s", ErrAlreadyUndone, a.ID)
	}
	undone := *a
	undone.Status = ImportAuditStatusUndone
	ts := at
	undone.UndoneAt = &ts
	undone.UndoneBy = by
	undone.recordIDs = a.RecordIDs()
	return &undone, nil
}
