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

const (
	revolutDateLayout = "2006-01-02 15:04:05"
	// Revolut exports are multi-currency; only the settlement currency is
	// imported, other rows are skipped silently.
	revolutSettlementCurrency = "GBP"
	revolutStateCompleted     = "COMPLETED"
)

// RevolutParser reads Revolut account CSV exports. Only fully completed GBP
// rows are imported: pending and reverted rows have no settled amount yet.
type RevolutParser struct{}

// NewRevolutParser returns a parser for the Revolut CSV dialect.
func NewRevolutParser() *RevolutParser { return &RevolutParser{} }

func (p *RevolutParser) BankName() string { return "Revolut" }

func (p *RevolutParser) ExpectedHeaders() []string {
	return []string{"Type", "Product", "Started Date", "Completed Date", "Description", "Amount", "Fee", "Currency", "State", "Balance"}
}

func (p *RevolutParser) CanParse(header []string) bool {
	return headerMatches(p.ExpectedHeaders(), header)
}

func (p *RevolutParser) Parse(r io.Reader) ([]domain.ImportedTransaction, error) {
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

		state := strings.ToUpper(strings.TrimSpace(row[idx["state"]]))
		if state != revolutStateCompleted {
			continue
		}
		currency := strings.ToUpper(strings.TrimSpace(row[idx["currency"]]))
		if currency != revolutSettlementCurrency {
			continue
		}

		date, err := time.Parse(revolutDateLayout, strings.TrimSpace(row[idx["completed date"]]))
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Completed Date", Cause: err}
		}
		amount, err := parseAmount(row[idx["amount"]])
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Amount", Cause: err}
		}
		// Fees are reported separately; the imported amount is the net
		// movement on the account.
		if feeRaw := strings.TrimSpace(row[idx["fee"]]); feeRaw != "" {
			fee, err := parseAmount(feeRaw)
			if err != nil {
				return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Fee", Cause: err}
			}
			amount = amount.Sub(fee)
		}

		description := strings.TrimSpace(row[idx["description"]])
		if description == "" {
			description = strings.TrimSpace(row[idx["type"]])
		}

		var balance *decimal.Decimal
		if balRaw := strings.TrimSpace(row[idx["balance"]]); balRaw != "" {
			bal, err := parseAmount(balRaw)
			if err != nil {
				return nil, &ParseError{Bank: p.BankName(), Line: line, Field: "Balance", Cause: err}
			}
			balance = &bal
		}

		tx, err := domain.NewImportedTransaction(date, amount, description, balance, "")
		if err != nil {
			return nil, &ParseError{Bank: p.BankName(), Line: line, Cause: err}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
