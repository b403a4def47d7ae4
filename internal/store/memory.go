package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/taxfolio/backend/internal/dedup"
	"github.com/taxfolio/backend/internal/domain"
)

// MemoryStore implements Store with in-memory storage. It backs tests and
// the CLI; real deployments plug in their own Store.
type MemoryStore struct {
	mu sync.RWMutex

	incomes          map[string]*domain.Income
	expenses         map[string]*domain.Expense
	bankTransactions map[string]*domain.BankTransaction
	importAudits     map[string]*domain.ImportAudit
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		incomes:          make(map[string]*domain.Income),
		expenses:         make(map[string]*domain.Expense),
		bankTransactions: make(map[string]*domain.BankTransaction),
		importAudits:     make(map[string]*domain.ImportAudit),
	}
}

// paginateIDs applies cursor-based pagination to a slice of IDs.
// Returns the page and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string, error) {
	if pageSize <= 0 {
		pageSize = 100
	}
	sort.Strings(ids)

	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", err)
		}
		startIdx = sort.SearchStrings(ids, cursorID)
		for startIdx < len(ids) && ids[startIdx] == cursorID {
			startIdx++
		}
	}
	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}
	return ids, nextToken, nil
}

// Income operations

func (m *MemoryStore) CreateIncome(ctx context.Context, income *domain.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	cp := *income
	m.incomes[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteIncome(ctx context.Context, incomeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.incomes[incomeID]; !ok {
		return fmt.Errorf("%w: income %s", ErrNotFound, incomeID)
	}
	delete(m.incomes, incomeID)
	return nil
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *domain.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	cp := *expense
	m.expenses[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteExpense(ctx context.Context, expenseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[expenseID]; !ok {
		return fmt.Errorf("%w: expense %s", ErrNotFound, expenseID)
	}
	delete(m.expenses, expenseID)
	return nil
}

// Bank transaction operations

func (m *MemoryStore) CreateBankTransaction(ctx context.Context, bt *domain.BankTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if bt.ID == "" {
		bt.ID = uuid.New().String()
	}
	cp := *bt
	m.bankTransactions[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) GetBankTransaction(ctx context.Context, btID string) (*domain.BankTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bt, ok := m.bankTransactions[btID]
	if !ok || bt.IsDeleted() {
		return nil, fmt.Errorf("%w: bank transaction %s", ErrNotFound, btID)
	}
	cp := *bt
	return &cp, nil
}

func (m *MemoryStore) UpdateBankTransaction(ctx context.Context, bt *domain.BankTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bankTransactions[bt.ID]; !ok {
		return fmt.Errorf("%w: bank transaction %s", ErrNotFound, bt.ID)
	}
	cp := *bt
	m.bankTransactions[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteBankTransaction(ctx context.Context, btID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bankTransactions[btID]; !ok {
		return fmt.Errorf("%w: bank transaction %s", ErrNotFound, btID)
	}
	delete(m.bankTransactions, btID)
	return nil
}

func (m *MemoryStore) ListBankTransactions(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*domain.BankTransaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, bt := range m.bankTransactions {
		if bt.BusinessID == businessID && !bt.IsDeleted() {
			matchingIDs = append(matchingIDs, id)
		}
	}
	pageIDs, nextToken, err := paginateIDs(matchingIDs, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	out := make([]*domain.BankTransaction, 0, len(pageIDs))
	for _, id := range pageIDs {
		cp := *m.bankTransactions[id]
		out = append(out, &cp)
	}
	return out, nextToken, nil
}

// Import audit operations

func (m *MemoryStore) CreateImportAudit(ctx context.Context, audit *domain.ImportAudit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *audit
	m.importAudits[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) GetImportAudit(ctx context.Context, auditID string) (*domain.ImportAudit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	audit, ok := m.importAudits[auditID]
	if !ok {
		return nil, fmt.Errorf("%w: import audit %s", ErrNotFound, auditID)
	}
	cp := *audit
	return &cp, nil
}

func (m *MemoryStore) UpdateImportAudit(ctx context.Context, audit *domain.ImportAudit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.importAudits[audit.ID]; !ok {
		return fmt.Errorf("%w: import audit %s", ErrNotFound, audit.ID)
	}
	cp := *audit
	m.importAudits[cp.ID] = &cp
	return nil
}

func (m *MemoryStore) ListImportAudits(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*domain.ImportAudit, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, audit := range m.importAudits {
		if audit.BusinessID == businessID {
			matchingIDs = append(matchingIDs, id)
		}
	}
	pageIDs, nextToken, err := paginateIDs(matchingIDs, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	out := make([]*domain.ImportAudit, 0, len(pageIDs))
	for _, id := range pageIDs {
		cp := *m.importAudits[id]
		out = append(out, &cp)
	}
	return out, nextToken, nil
}

// ListExistingRecords builds the duplicate-detection snapshot: all active
// incomes, expenses and staged bank transactions for the business. Income
// and expense amounts are stored unsigned, so they are re-signed here to
// compare against signed statement amounts.
func (m *MemoryStore) ListExistingRecords(ctx context.Context, businessID string) ([]dedup.ExistingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []dedup.ExistingRecord
	for _, inc := range m.incomes {
		if inc.BusinessID != businessID {
			continue
		}
		records = append(records, dedup.ExistingRecord{
			ID:          inc.ID,
			Source:      dedup.SourceIncome,
			Date:        inc.Date,
			Amount:      inc.Amount,
			Description: inc.Description,
		})
	}
	for _, exp := range m.expenses {
		if exp.BusinessID != businessID {
			continue
		}
		records = append(records, dedup.ExistingRecord{
			ID:          exp.ID,
			Source:      dedup.SourceExpense,
			Date:        exp.Date,
			Amount:      exp.Amount.Neg(),
			Description: exp.Description,
		})
	}
	for _, bt := range m.bankTransactions {
		if bt.BusinessID != businessID || bt.IsDeleted() {
			continue
		}
		records = append(records, dedup.ExistingRecord{
			ID:          bt.ID,
			Source:      dedup.SourceBankTransaction,
			Date:        bt.Date,
			Amount:      bt.Amount,
			Description: bt.Description,
		})
	}
	return records, nil
}
