package bankformat

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barclaysSample = `Number,Date,Account,Amount,Subcategory,Memo
1,10/03/2025,20-00-00 12345678,-10.00,Payment,TESCO STORES 1234
2,11/03/2025,20-00-00 12345678,"1,250.00",Credit,CLIENT INVOICE 42
3,12/03/2025,20-00-00 12345678,-3.50,Card Purchase,
`

func TestBarclaysParse(t *testing.T) {
	p := NewBarclaysParser()
	txs, err := p.Parse(strings.NewReader(barclaysSample))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("-10.00")))
	assert.Equal(t, "TESCO STORES 1234", txs[0].Description)
	assert.Equal(t, "1", txs[0].Reference)

	// Only the data-minimized tail of the account column is kept.
	assert.Equal(t, "5678", txs[0].AccountLastFour)

	// Quoted field with an embedded comma.
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("1250.00")))
	assert.True(t, txs[1].IsIncome())

	// Blank memo falls back to the subcategory.
	assert.Equal(t, "Card Purchase", txs[2].Description)
}

func TestBarclaysParseRejectsMalformedRows(t *testing.T) {
	p := NewBarclaysParser()

	badDate := "Number,Date,Account,Amount,Subcategory,Memo\n1,not-a-date,acc,-1.00,Payment,X\n"
	_, err := p.Parse(strings.NewReader(badDate))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Barclays", pe.Bank)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "Date", pe.Field)

	emptyAmount := "Number,Date,Account,Amount,Subcategory,Memo\n1,10/03/2025,acc,,Payment,X\n"
	_, err = p.Parse(strings.NewReader(emptyAmount))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Amount", pe.Field)
}

const revolutSample = `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2025-03-09 18:00:00,2025-03-10 09:15:00,Figma,-15.00,0.00,GBP,COMPLETED,984.50
CARD_PAYMENT,Current,2025-03-10 08:00:00,,Pending coffee,-3.20,0.00,GBP,PENDING,
EXCHANGE,Current,2025-03-10 10:00:00,2025-03-10 10:00:00,EUR exchange,-50.00,0.00,EUR,COMPLETED,120.00
TRANSFER,Current,2025-03-11 12:00:00,2025-03-11 12:00:05,,100.00,1.00,GBP,COMPLETED,1083.50
CARD_PAYMENT,Current,2025-03-11 13:00:00,2025-03-11 13:00:05,Refunded thing,-9.99,0.00,GBP,REVERTED,
`

func TestRevolutParseFiltersStateAndCurrency(t *testing.T) {
	p := NewRevolutParser()
	txs, err := p.Parse(strings.NewReader(revolutSample))
	require.NoError(t, err)

	// Pending, reverted and non-GBP rows are skipped, not errors.
	require.Len(t, txs, 2)

	assert.Equal(t, "Figma", txs[0].Description)
	require.NotNil(t, txs[0].Balance)
	assert.True(t, txs[0].Balance.Equal(decimal.RequireFromString("984.50")))

	// Net of fee, and blank description falls back to the type.
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("99.00")))
	assert.Equal(t, "TRANSFER", txs[1].Description)
}

const monzoSample = `Transaction ID,Date,Time,Type,Name,Emoji,Category,Amount,Currency,Local amount,Local currency,Notes and #tags,Address,Receipt,Description,Category split
tx_0001,10/03/2025,09:15:00,Card payment,Pret A Manger,,Eating out,-4.50,GBP,-4.50,GBP,,London,,PRET A MANGER LONDON,
tx_0002,10/03/2025,11:00:00,Card payment,,,Shopping,-20.00,USD,-25.40,USD,,,,AMAZON US,
tx_0003,11/03/2025,14:30:00,Faster payment,,,Income,250.00,GBP,250.00,GBP,,,,,
`

func TestMonzoParse(t *testing.T) {
	p := NewMonzoParser()
	txs, err := p.Parse(strings.NewReader(monzoSample))
	require.NoError(t, err)

	// The USD row is skipped silently.
	require.Len(t, txs, 2)
	assert.Equal(t, "Pret A Manger", txs[0].Description)
	assert.Equal(t, "tx_0001", txs[0].Reference)

	// Name and description blank: fall back to the type.
	assert.Equal(t, "Faster payment", txs[1].Description)
	assert.True(t, txs[1].IsIncome())
}

const santanderSample = `Date,Description,Amount,Balance
10/03/2025,DIRECT DEBIT BRITISH GAS,-80.00,1200.00
11/03/2025,FASTER PAYMENT RECEIVED,500.00,1700.00
`

func TestSantanderParse(t *testing.T) {
	p := NewSantanderParser()
	txs, err := p.Parse(strings.NewReader(santanderSample))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "DIRECT DEBIT BRITISH GAS", txs[0].Description)
	require.NotNil(t, txs[1].Balance)
	assert.True(t, txs[1].Balance.Equal(decimal.RequireFromString("1700.00")))
}

func TestParseWrongHeaderFails(t *testing.T) {
	_, err := NewBarclaysParser().Parse(strings.NewReader(santanderSample))
	assert.ErrorIs(t, err, ErrFormatNotRecognized)
}

func TestDecodeReader(t *testing.T) {
	t.Run("utf-8 passthrough", func(t *testing.T) {
		r, err := DecodeReader(strings.NewReader("abc"), "")
		require.NoError(t, err)
		buf := make([]byte, 3)
		_, err = r.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(buf))
	})

	t.Run("windows-1252 pound sign", func(t *testing.T) {
		// 0xA3 is £ in windows-1252.
		r, err := DecodeReader(strings.NewReader("\xa310.00"), "windows-1252")
		require.NoError(t, err)
		var sb strings.Builder
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			sb.Write(buf[:n])
			if err != nil {
				break
			}
		}
		assert.Equal(t, "£10.00", sb.String())
	})

	t.Run("unknown charset", func(t *testing.T) {
		_, err := DecodeReader(strings.NewReader(""), "klingon-8")
		assert.Error(t, err)
	})
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	pe := &ParseError{Bank: "Barclays", Line: 3, Field: "Amount", Cause: cause}
	assert.ErrorIs(t, pe, cause)
	assert.Contains(t, pe.Error(), "line 3")
}
