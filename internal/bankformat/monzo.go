package bankformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/taxfolio/backend/internal/domain"
)

const (
	monzoDateLayout         = "02/01/2006"
	monzoSettlementCurrency = "GBP"
)

// MonzoParser reads Monzo account CSV exports.
type MonzoParser struct{}

// NewMonzoParser returns a parser for the Monzo CSV dialect.
func NewMonzoParser() *MonzoParser { return &MonzoParser{} }

func (p *MonzoParser) BankName() string { return "Monzo" }

func (p *MonzoParser) ExpectedHeaders() []string {
	return []string{
		"Transaction ID", "Date", "Time", "Type", "Name", "Emoji", "Category",
		"Amount", "Currency", "Local amount", "Local currency",
		"Notes and #tags", "Address", "Receipt", "Description", "Category split",
	}
}

func (p *MonzoParser) CanParse(header []string) bool {
	return headerMatches(p.ExpectedHeaders(), header)
}

func (p *MonzoParser) Parse(r io.Reader) ([]domain.ImportedTransaction, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, &ParseError{Bank: p.BankName(), Line: 1, Cause: err}
	}
	if !p.CanParse(header) {
		return nil, fmt.Errorf("%w: header does not match %s layout", ErrFormatNotRecognized, p.BankName())
	}
	idx := columnIndex(header)

	var txs []domain.ImportedTransaction
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Cause: err}
		}

		currency := strings.ToUpper(strings.TrimSpace(row[idx["currency"]]))
		if currency != monzoSettlementCurrency {
			continue
		}

		date, err := time.Parse(monzoDateLayout, strings.TrimSpace(row[idx["date"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Date", Cause: err}
		}
		amount, err := parseAmount(row[idx["amount"]])
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Amount", Cause: err}
		}

		// Prefer the counterparty name, then the free-text description, and
		// finally the transaction type so the description is never blank.
		description := strings.TrimSpace(row[idx["name"]])
		if description == "" {
			description = strings.TrimSpace(row[idx["description"]])
		}
		if description == "" {
			description = strings.TrimSpace(row[idx["type"]])
		}

		tx, err := domain.NewImportedTransaction(date, amount, description, nil, strings.TrimSpace(row[idx["transaction id"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Cause: err}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
