// Package bankformat parses bank CSV statement exports into normalized
// transactions. Each supported bank dialect implements Parser; the Detector
// picks the right one from the header row.
package bankformat

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/taxfolio/backend/internal/domain"
)

// ErrFormatNotRecognized is returned when no registered parser matches the
// header row of a file.
var ErrFormatNotRecognized = errors.New("bank statement format not recognized")

// Parser is the contract one bank dialect implements. Adding a bank means
// adding one implementation and registering it with the Detector; nothing
// downstream changes.
type Parser interface {
	// BankName is the human-readable bank name, e.g. "Barclays".
	BankName() string
	// ExpectedHeaders is the exact header row this dialect exports.
	ExpectedHeaders() []string
	// CanParse reports whether the given header row matches this dialect.
	// Comparison is case-insensitive and ignores surrounding whitespace.
	CanParse(header []string) bool
	// Parse reads the whole file (including the header row) and returns the
	// settled transactions in file order. A malformed row fails the whole
	// parse; financial data is never best-effort imported.
	Parse(r io.Reader) ([]domain.ImportedTransaction, error)
}

// ParseError describes a row-level parse failure.
type ParseError struct {
	Bank  string
	Line  int
	Field string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: line %d: field %q: %v", e.Bank, e.Line, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: line %d: %v", e.Bank, e.Line, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// DecodeReader wraps r with a charset decoder. The charset is an IANA name
// such as "windows-1252"; empty means UTF-8 passthrough.
func DecodeReader(r io.Reader, charset string) (io.Reader, error) {
	name := strings.TrimSpace(strings.ToLower(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(r), nil
}

// headerMatches compares a header row against the expected one,
// case-insensitively and ignoring surrounding whitespace.
func headerMatches(expected, got []string) bool {
	if len(expected) != len(got) {
		return false
	}
	for i := range expected {
		if !strings.EqualFold(strings.TrimSpace(expected[i]), strings.TrimSpace(got[i])) {
			return false
		}
	}
	return true
}

// columnIndex builds a lower-cased header-name to column-index map.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// parseAmount parses a statement amount, tolerating currency symbols and
// thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "£")
	if cleaned == "" {
		return decimal.Decimal{}, errors.New("amount is empty")
	}
	return decimal.NewFromString(cleaned)
}
