// Package store defines the persistence boundary of the import pipeline.
// Real persistence is an external collaborator; MemoryStore backs tests and
// the CLI.
package store

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/taxfolio/backend/internal/dedup"
	"github.com/taxfolio/backend/internal/domain"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("not found")

// Store defines the database operations used by the import and review
// services.
type Store interface {
	// Income operations
	CreateIncome(ctx context.Context, income *domain.Income) error
	DeleteIncome(ctx context.Context, incomeID string) error

	// Expense operations
	CreateExpense(ctx context.Context, expense *domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	// Bank transaction (staging) operations
	CreateBankTransaction(ctx context.Context, bt *domain.BankTransaction) error
	// GetBankTransaction returns only active (not soft-deleted) rows.
	GetBankTransaction(ctx context.Context, btID string) (*domain.BankTransaction, error)
	UpdateBankTransaction(ctx context.Context, bt *domain.BankTransaction) error
	DeleteBankTransaction(ctx context.Context, btID string) error
	ListBankTransactions(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*domain.BankTransaction, string, error)

	// Import audit operations
	CreateImportAudit(ctx context.Context, audit *domain.ImportAudit) error
	GetImportAudit(ctx context.Context, auditID string) (*domain.ImportAudit, error)
	UpdateImportAudit(ctx context.Context, audit *domain.ImportAudit) error
	ListImportAudits(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*domain.ImportAudit, string, error)

	// ListExistingRecords returns the duplicate-detection snapshot for a
	// business: every active income, expense and staged bank transaction.
	ListExistingRecords(ctx context.Context, businessID string) ([]dedup.ExistingRecord, error)
}

// EncodePageToken encodes a record ID into a page token.
func EncodePageToken(id string) string {
	if id == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(id))
}

// DecodePageToken decodes a page token back to a record ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
