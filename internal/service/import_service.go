// Package service orchestrates the import pipeline: format detection,
// parsing, duplicate detection, categorization and persistence, plus the
// review operations on staged transactions.
package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/bankformat"
	"github.com/taxfolio/backend/internal/categorize"
	"github.com/taxfolio/backend/internal/dedup"
	"github.com/taxfolio/backend/internal/domain"
	"github.com/taxfolio/backend/internal/store"
)

// MaxFileSizeBytes is the statement upload limit, checked before the file is
// read into memory.
const MaxFileSizeBytes = 10 * 1024 * 1024

// retentionYears is how long original statement files must stay retrievable
// for a filed return.
const retentionYears = 6

// ErrFileTooLarge is returned when a statement file exceeds MaxFileSizeBytes.
var ErrFileTooLarge = errors.New("statement file too large")

// ImportResult summarises one import batch.
type ImportResult struct {
	BankName     string
	TotalParsed  int
	Imported     int
	Duplicates   int
	Skipped      int
	Flagged      int
	IncomeCount  int
	ExpenseCount int
	AuditID      string
}

// ImportService runs the statement import pipeline. Imports for one business
// are serialized by the caller; the service assumes no concurrent import for
// the same business.
type ImportService struct {
	store    store.Store
	detector *bankformat.Detector
	engine   *categorize.Engine
	dedup    *dedup.Detector
	log      zerolog.Logger
	now      func() time.Time
}

// NewImportService wires the import pipeline.
func NewImportService(st store.Store, log zerolog.Logger) *ImportService {
	return &ImportService{
		store:    st,
		detector: bankformat.NewDetector(),
		engine:   categorize.NewEngine(),
		dedup:    dedup.NewDetector(),
		log:      log,
		now:      time.Now,
	}
}

// ImportCSV imports one bank statement file for a business. The charset is an
// IANA name ("windows-1252"); empty means UTF-8. Nothing is persisted unless
// parsing and duplicate detection both succeed.
func (s *ImportService) ImportCSV(ctx context.Context, businessID, filePath, charset string) (*ImportResult, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat statement file: %w", err)
	}
	if info.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, info.Size(), MaxFileSizeBytes)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read statement file: %w", err)
	}
	fileHash := sha256.Sum256(raw)

	decoded, err := bankformat.DecodeReader(bytes.NewReader(raw), charset)
	if err != nil {
		return nil, err
	}
	parser, err := s.detector.Detect(decoded)
	if err != nil {
		return nil, err
	}

	// Detect consumed the header; parse from a fresh reader.
	decoded, err = bankformat.DecodeReader(bytes.NewReader(raw), charset)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(decoded)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListExistingRecords(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading existing records: %w", err)
	}
	matches := s.dedup.Matches(parsed, existing)

	now := s.now()
	auditID := uuid.New().String()
	result := &ImportResult{
		BankName:    parser.BankName(),
		TotalParsed: len(parsed),
		AuditID:     auditID,
	}
	for _, m := range matches {
		switch m.Kind {
		case dedup.MatchExact:
			result.Duplicates++
		case dedup.MatchLikely, dedup.MatchSimilar:
			result.Flagged++
		}
	}
	s.log.Info().
		Str("business_id", businessID).
		Str("file", filepath.Base(filePath)).
		Str("bank", parser.BankName()).
		Int("parsed", len(parsed)).
		Int("duplicates", result.Duplicates).
		Int("flagged", result.Flagged).
		Msg("statement parsed")

	// Candidates are persisted in file order so the audit's recordIDs read as
	// the batch's creation narrative; undo replays exactly that list.
	var recordIDs []domain.RecordID
	for i, tx := range parsed {
		switch matches[i].Kind {
		case dedup.MatchExact:
			continue
		case dedup.MatchNew:
			created, err := s.persistNewTransaction(ctx, businessID, auditID, parser.BankName(), tx, now, result)
			if err != nil {
				return nil, err
			}
			recordIDs = append(recordIDs, created...)
		default:
			// Likely or similar: stage for the user's explicit decision.
			bt, err := s.stageTransaction(businessID, auditID, parser.BankName(), tx, now)
			if err != nil {
				return nil, err
			}
			if err := s.store.CreateBankTransaction(ctx, &bt); err != nil {
				return nil, fmt.Errorf("staging flagged transaction: %w", err)
			}
			recordIDs = append(recordIDs, domain.RecordID{Kind: domain.RecordKindBankTransaction, ID: bt.ID})
		}
	}

	audit, err := domain.NewImportAudit(domain.ImportAuditParams{
		ID:               auditID,
		BusinessID:       businessID,
		ImportTimestamp:  now,
		FileName:         filepath.Base(filePath),
		FileHash:         hex.EncodeToString(fileHash[:]),
		ImportType:       "bank_statement_csv",
		TotalRecords:     result.TotalParsed,
		ImportedCount:    result.Imported,
		SkippedCount:     result.Duplicates + result.Skipped,
		RecordIDs:        recordIDs,
		OriginalFilePath: filePath,
		RetentionUntil:   now.AddDate(retentionYears, 0, 0),
		ImportedBy:       businessID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateImportAudit(ctx, audit); err != nil {
		return nil, fmt.Errorf("writing import audit: %w", err)
	}

	s.log.Info().
		Str("business_id", businessID).
		Str("audit_id", auditID).
		Int("imported", result.Imported).
		Int("income", result.IncomeCount).
		Int("expenses", result.ExpenseCount).
		Int("skipped", result.Skipped).
		Msg("import committed")
	return result, nil
}

// persistNewTransaction stages one non-duplicate transaction and, unless the
// exclusion rules fire, promotes it to an Income or Expense record linked to
// the staging row. Returns the created record IDs in creation order.
func (s *ImportService) persistNewTransaction(ctx context.Context, businessID, auditID, bankName string, tx domain.ImportedTransaction, now time.Time, result *ImportResult) ([]domain.RecordID, error) {
	bt, err := s.stageTransaction(businessID, auditID, bankName, tx, now)
	if err != nil {
		return nil, err
	}
	rec := s.engine.Recommend(tx)
	bt, err = s.engine.Apply(bt, rec, now)
	if err != nil {
		return nil, err
	}

	if rec.ShouldExclude {
		if err := s.store.CreateBankTransaction(ctx, &bt); err != nil {
			return nil, fmt.Errorf("staging excluded transaction: %w", err)
		}
		result.Skipped++
		return []domain.RecordID{{Kind: domain.RecordKindBankTransaction, ID: bt.ID}}, nil
	}

	if tx.IsIncome() {
		category, _ := categorize.SuggestIncomeCategory(tx.Description)
		income := &domain.Income{
			ID:                uuid.New().String(),
			BusinessID:        businessID,
			Date:              tx.Date,
			Amount:            tx.AbsoluteAmount(),
			Description:       tx.Description,
			Category:          category,
			Reference:         tx.Reference,
			BankTransactionID: bt.ID,
			CreatedAt:         now,
		}
		if err := s.store.CreateIncome(ctx, income); err != nil {
			return nil, fmt.Errorf("creating income record: %w", err)
		}
		bt, err = bt.WithCategorizedIncome(income.ID, now)
		if err != nil {
			return nil, err
		}
		if err := s.store.CreateBankTransaction(ctx, &bt); err != nil {
			return nil, fmt.Errorf("staging income transaction: %w", err)
		}
		result.Imported++
		result.IncomeCount++
		return []domain.RecordID{
			{Kind: domain.RecordKindIncome, ID: income.ID},
			{Kind: domain.RecordKindBankTransaction, ID: bt.ID},
		}, nil
	}

	expense := &domain.Expense{
		ID:                uuid.New().String(),
		BusinessID:        businessID,
		Date:              tx.Date,
		Amount:            tx.AbsoluteAmount(),
		Description:       tx.Description,
		Category:          rec.Classification.Category,
		BankTransactionID: bt.ID,
		CreatedAt:         now,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("creating expense record: %w", err)
	}
	bt, err = bt.WithCategorizedExpense(expense.ID, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateBankTransaction(ctx, &bt); err != nil {
		return nil, fmt.Errorf("staging expense transaction: %w", err)
	}
	result.Imported++
	result.ExpenseCount++
	return []domain.RecordID{
		{Kind: domain.RecordKindExpense, ID: expense.ID},
		{Kind: domain.RecordKindBankTransaction, ID: bt.ID},
	}, nil
}

func (s *ImportService) stageTransaction(businessID, auditID, bankName string, tx domain.ImportedTransaction, now time.Time) (domain.BankTransaction, error) {
	return domain.NewBankTransaction(uuid.New().String(), businessID, auditID, bankName, tx, now)
}

// UndoImport reverses one import batch: every record the batch created is
// deleted in creation order, then the audit is flipped to Undone. The audit's
// import facts (counts, record IDs, file hash) stay unchanged.
func (s *ImportService) UndoImport(ctx context.Context, auditID, undoneBy string, now time.Time) error {
	audit, err := s.store.GetImportAudit(ctx, auditID)
	if err != nil {
		return err
	}
	undone, err := audit.WithUndone(undoneBy, now)
	if err != nil {
		return err
	}

	for _, rec := range audit.RecordIDs() {
		switch rec.Kind {
		case domain.RecordKindIncome:
			err = s.store.DeleteIncome(ctx, rec.ID)
		case domain.RecordKindExpense:
			err = s.store.DeleteExpense(ctx, rec.ID)
		case domain.RecordKindBankTransaction:
			err = s.store.DeleteBankTransaction(ctx, rec.ID)
		default:
			err = fmt.Errorf("unknown record kind %q", rec.Kind)
		}
		if err != nil {
			return fmt.Errorf("undoing import %s: %w", auditID, err)
		}
	}

	if err := s.store.UpdateImportAudit(ctx, undone); err != nil {
		return fmt.Errorf("marking import %s undone: %w", auditID, err)
	}
	s.log.Info().
		Str("audit_id", auditID).
		Str("undone_by", undoneBy).
		Int("records_removed", len(audit.RecordIDs())).
		Msg("import undone")
	return nil
}

// GenerateFilename returns the deterministic archive name for an uploaded
// statement: {businessID}_{bank}_{timestamp}.csv.
func GenerateFilename(businessID, bankName string, now time.Time) string {
	bank := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(bankName)), " ", "-")
	return fmt.Sprintf("%s_%s_%s.csv", businessID, bank, now.UTC().Format("20060102T150405Z"))
}
