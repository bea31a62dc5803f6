package model

import "github.com/shopspring/decimal"

// ParseResult is the complete outcome of parsing one statement file.
// Totals are rounded to two decimal places; Period bounds are ISO dates
// taken from the extracted transactions.
type ParseResult struct {
	Success       bool            `json:"success"`
	Transactions  []Transaction   `json:"transactions"`
	PeriodStart   string          `json:"periodStart,omitempty"`
	PeriodEnd     string          `json:"periodEnd,omitempty"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	TotalDebits   decimal.Decimal `json:"totalDebits"`
	DetectedBank  string          `json:"detectedBank,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Error         string          `json:"error,omitempty"`
}
