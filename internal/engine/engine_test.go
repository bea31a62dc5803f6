package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finfold/bankstat/internal/common"
	"github.com/finfold/bankstat/internal/model"
	"github.com/finfold/bankstat/internal/tabular"
)

// Zero-filled split-column export, the common big-bank CSV shape.
const splitColumnCSV = `Date,Description,Debit,Credit,Balance
01/05/2024,DEBIT CARD PURCHASE STARBUCKS 4821,5.75,0.00,994.25
01/06/2024,PAYROLL ACME CORP,0.00,2500.00,3494.25
01/07/2024,POS WHOLE FOODS MARKET 1123,82.45,0.00,3411.80
01/08/2024,ATM WITHDRAWAL 0231,100.00,0.00,3311.80
01/09/2024,CHECK #1102,250.00,0.00,3061.80
`

const textOnlyCSV = `Section,Comment
Summary,Opening balance carried forward
Summary,See appendix for fees
`

func TestParseSplitColumnStatement(t *testing.T) {
	eng := New()

	result, err := eng.ParseFile([]byte(splitColumnCSV), "chase_statement.csv")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	require.Len(t, result.Transactions, 5)

	first := result.Transactions[0]
	assert.Equal(t, "2024-01-05", first.Date)
	assert.Equal(t, "DEBIT CARD PURCHASE STARBUCKS 4821", first.Description)
	assert.Equal(t, model.Debit, first.Type)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("5.75")))
	assert.Equal(t, "STARBUCKS", first.Merchant)
	require.NotNil(t, first.Balance)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("994.25")))

	second := result.Transactions[1]
	assert.Equal(t, model.Credit, second.Type)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("2500.00")))

	assert.Equal(t, "2024-01-05", result.PeriodStart)
	assert.Equal(t, "2024-01-09", result.PeriodEnd)
	assert.True(t, result.TotalDebits.Equal(decimal.RequireFromString("438.20")), "got %s", result.TotalDebits)
	assert.True(t, result.TotalCredits.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, "Chase", result.DetectedBank, "filename should identify the bank")
}

func TestParseIsIdempotent(t *testing.T) {
	eng := NewWithClock(func() time.Time {
		return time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	})

	first, err := eng.ParseFile([]byte(splitColumnCSV), "chase_statement.csv")
	require.NoError(t, err)
	second, err := eng.ParseFile([]byte(splitColumnCSV), "chase_statement.csv")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseSelectsRichestSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Cover"))
	require.NoError(t, f.SetSheetRow("Cover", "A1", &[]any{"Statement", "Prepared for review"}))
	require.NoError(t, f.SetSheetRow("Cover", "A2", &[]any{"Nothing", "tabular here"}))

	_, err := f.NewSheet("Register")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Register", "A1", &[]any{"Date", "Description", "Amount"}))
	for i, row := range [][]any{
		{"03/01/2024", "ENTRY ONE", "-10.00"},
		{"03/02/2024", "ENTRY TWO", "-11.00"},
		{"03/03/2024", "ENTRY THREE", "-12.00"},
		{"03/04/2024", "ENTRY FOUR", "-13.00"},
		{"03/05/2024", "ENTRY FIVE", "-14.00"},
		{"03/06/2024", "ENTRY SIX", "-15.00"},
		{"03/07/2024", "ENTRY SEVEN", "-16.00"},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Register", cell, &row))
	}

	_, err = f.NewSheet("Recent")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Recent", "A1", &[]any{"Date", "Description", "Amount"}))
	for i, row := range [][]any{
		{"03/04/2024", "ENTRY FOUR", "-13.00"},
		{"03/05/2024", "ENTRY FIVE", "-14.00"},
		{"03/06/2024", "ENTRY SIX", "-15.00"},
		{"03/07/2024", "ENTRY SEVEN", "-16.00"},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Recent", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := New().ParseFile(buf.Bytes(), "statement.xlsx")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Len(t, result.Transactions, 7, "the seven-row register must win over the four-row recent view")
}

func TestParseSheetTieKeepsEarlier(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Checking"))
	require.NoError(t, f.SetSheetRow("Checking", "A1", &[]any{"Date", "Description", "Amount"}))
	require.NoError(t, f.SetSheetRow("Checking", "A2", &[]any{"03/01/2024", "WELLS FARGO TRANSFER", "-10.00"}))
	require.NoError(t, f.SetSheetRow("Checking", "A3", &[]any{"03/02/2024", "COFFEE SHOP", "-4.50"}))

	_, err := f.NewSheet("Savings")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Savings", "A1", &[]any{"Date", "Description", "Amount"}))
	require.NoError(t, f.SetSheetRow("Savings", "A2", &[]any{"03/01/2024", "HSBC TRANSFER", "10.00"}))
	require.NoError(t, f.SetSheetRow("Savings", "A3", &[]any{"03/02/2024", "INTEREST PAID", "0.12"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := New().ParseFile(buf.Bytes(), "statement.xlsx")
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "Wells Fargo", result.DetectedBank, "equal yields must keep the earlier sheet")
}

func TestParseTotalsRounding(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"2024-03-01,ENTRY ONE,10.005\n" +
		"2024-03-02,ENTRY TWO,0.002\n" +
		"2024-03-03,ENTRY THREE,-5.0049\n"

	result, err := New().ParseFile([]byte(csv), "export.csv")
	require.NoError(t, err)

	require.Len(t, result.Transactions, 3)
	assert.True(t, result.TotalCredits.Equal(decimal.RequireFromString("10.01")), "got %s", result.TotalCredits)
	assert.True(t, result.TotalDebits.Equal(decimal.RequireFromString("5.00")), "got %s", result.TotalDebits)
}

func TestParseClockFallbackDate(t *testing.T) {
	eng := NewWithClock(func() time.Time {
		return time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	})
	csv := "Date,Description,Amount\n" +
		"pending,SCHEDULED PAYMENT,-10.00\n" +
		"01/02/2024,COFFEE SHOP,-4.50\n"

	result, err := eng.ParseFile([]byte(csv), "export.csv")
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "2024-06-30", result.Transactions[0].Date)
	assert.Equal(t, "2024-01-02", result.Transactions[1].Date)
	assert.Equal(t, "2024-01-02", result.PeriodStart)
	assert.Equal(t, "2024-06-30", result.PeriodEnd)
}

func TestParseNoTransactions(t *testing.T) {
	result, err := New().ParseFile([]byte(textOnlyCSV), "notes.csv")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.NotNil(t, result.Transactions)
	assert.Empty(t, result.Transactions)
}

func TestParsePDFRejected(t *testing.T) {
	result, err := New().ParseFile([]byte("%PDF-1.4"), "scan.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPDFNotSupported)
	assert.False(t, result.Success)
}

func TestParseUnsupportedExtension(t *testing.T) {
	result, err := New().ParseFile([]byte("whatever"), "notes.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedExtension)
	assert.False(t, result.Success)
}

func TestParseMalformedWorkbook(t *testing.T) {
	result, err := New().Parse([]byte("not a zip archive"), "broken.xlsx", tabular.TypeXLSX)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedTable)
	assert.False(t, result.Success)
}
