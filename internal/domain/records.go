package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a promoted income record. Amounts are stored unsigned.
// BankTransactionID links back to the staging row, keeping the digital link
// chain from source file to promoted record intact.
type Income struct {
	ID                string
	BusinessID        string
	Date              time.Time
	Amount            decimal.Decimal
	Description       string
	Category          IncomeCategory
	Reference         string
	BankTransactionID string
	CreatedAt         time.Time
}

// Expense is a promoted expense record. Amounts are stored unsigned.
type Expense struct {
	ID                string
	BusinessID        string
	Date              time.Time
	Amount            decimal.Decimal
	Description       string
	Category          ExpenseCategory
	ReceiptPath       string
	Notes             string
	BankTransactionID string
	CreatedAt         time.Time
}
