package bankformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/backend/internal/domain"
)

const santanderDateLayout = "02/01/2006"

// SantanderParser reads Santander current-account CSV exports.
type SantanderParser struct{}

// NewSantanderParser returns a parser for the Santander CSV dialect.
func NewSantanderParser() *SantanderParser { return &SantanderParser{} }

func (p *SantanderParser) BankName() string { return "Santander" }

func (p *SantanderParser) ExpectedHeaders() []string {
	return []string{"Date", "Description", "Amount", "Balance"}
}

func (p *SantanderParser) CanParse(header []string) bool {
	return headerMatches(p.ExpectedHeaders(), header)
}

func (p *SantanderParser) Parse(r io.Reader) ([]domain.ImportedTransaction, error) {
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

		date, err := time.Parse(santanderDateLayout, strings.TrimSpace(row[idx["date"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Date", Cause: err}
		}
		amount, err := parseAmount(row[idx["amount"]])
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Amount", Cause: err}
		}

		var balance *decimal.Decimal
		if balRaw := strings.TrimSpace(row[idx["balance"]]); balRaw != "" {
			bal, err := parseAmount(balRaw)
			if err != nil {
				return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Balance", Cause: err}
			}
			balance = &bal
		}

		tx, err := domain.NewImportedTransaction(date, amount, strings.TrimSpace(row[idx["description"]]), balance, "")
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Cause: err}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
