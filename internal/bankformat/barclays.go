package bankformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/taxfolio/backend/internal/domain"
)

const barclaysDateLayout = "02/01/2006"

// BarclaysParser reads Barclays current-account CSV exports.
type BarclaysParser struct{}

// NewBarclaysParser returns a parser for the Barclays CSV dialect.
func NewBarclaysParser() *BarclaysParser { return &BarclaysParser{} }

func (p *BarclaysParser) BankName() string { return "Barclays" }

func (p *BarclaysParser) ExpectedHeaders() []string {
	return []string{"Number", "Date", "Account", "Amount", "Subcategory", "Memo"}
}

func (p *BarclaysParser) CanParse(header []string) bool {
	return headerMatches(p.ExpectedHeaders(), header)
}

func (p *BarclaysParser) Parse(r io.Reader) ([]domain.ImportedTransaction, error) {
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

		date, err := time.Parse(barclaysDateLayout, strings.TrimSpace(row[idx["date"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Date", Cause: err}
		}
		amount, err := parseAmount(row[idx["amount"]])
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Amount", Cause: err}
		}

		// Barclays leaves the memo blank for some card transactions; fall
		// back to the coarser subcategory so no transaction ends up with a
		// blank description.
		description := strings.TrimSpace(row[idx["memo"]])
		if description == "" {
			description = strings.TrimSpace(row[idx["subcategory"]])
		}

		tx, err := domain.NewImportedTransaction(date, amount, description, nil, strings.TrimSpace(row[idx["number"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Cause: err}
		}
		txs = append(txs, tx.WithAccountLastFour(row[idx["account"]]))
	}
	return txs, nil
}
