// Package domain holds the entities and value objects of the import and
// review pipeline. All types are immutable values: state changes go through
// WithX methods that return a new instance.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransaction is returned when a transaction fails validation at
// construction time.
var ErrInvalidTransaction = errors.New("invalid transaction")

// ImportedTransaction is the normalized representation of one bank statement
// line. It is transient: after an import it is either promoted to an Income
// or Expense record, staged as a BankTransaction, or dropped as a duplicate.
type ImportedTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	// Balance and Reference are informational only and excluded from the
	// content hash.
	Balance   *decimal.Decimal
	Reference string
	// AccountLastFour is the data-minimized account identifier for dialects
	// that expose an account column. Informational, excluded from the hash.
	AccountLastFour string
}

// NewImportedTransaction validates and builds an ImportedTransaction. The
// date is truncated to a calendar day in UTC.
func NewImportedTransaction(date time.Time, amount decimal.Decimal, description string, balance *decimal.Decimal, reference string) (ImportedTransaction, error) {
	if date.IsZero() {
		return ImportedTransaction{}, fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	if strings.TrimSpace(description) == "" {
		return ImportedTransaction{}, fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	return ImportedTransaction{
		Date:        DateOnly(date),
		Amount:      amount,
		Description: description,
		Balance:     balance,
		Reference:   reference,
	}, nil
}

// DateOnly truncates t to midnight UTC so calendar-day comparison is exact.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WithAccountLastFour records the data-minimized tail of the source account
// identifier. Only the last four digits are kept; the full account number
// never enters the domain.
func (t ImportedTransaction) WithAccountLastFour(account string) ImportedTransaction {
	t.AccountLastFour = LastFourDigits(account)
	return t
}

// LastFourDigits strips non-digits from s and returns at most the last four
// remaining digits.
func LastFourDigits(s string) string {
	var digits []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}

// IsIncome reports whether the amount is strictly positive.
func (t ImportedTransaction) IsIncome() bool {
	return t.Amount.GreaterThan(decimal.Zero)
}

// IsExpense reports whether the amount is zero or negative. A zero amount
// classifies as an expense on purpose: the import never silently drops a
// statement line, and defaulting to expense keeps it visible for review.
func (t ImportedTransaction) IsExpense() bool {
	return !t.IsIncome()
}

// AbsoluteAmount returns the unsigned amount.
func (t ImportedTransaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// Hash returns a stable content fingerprint over date, amount and the
// normalized description. Trailing zeros on the amount are stripped
// (decimal.String already emits the minimal form), so 10.00 and 10.0 hash
// identically. Balance and Reference do not participate.
func (t ImportedTransaction) Hash() string {
	canonical := t.Date.Format("2006-01-02") + "|" + t.Amount.String() + "|" + NormalizeDescription(t.Description)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// NormalizeDescription lower-cases s, collapses runs of whitespace to single
// spaces and trims the ends. Used for hashing and duplicate comparison.
func NormalizeDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
