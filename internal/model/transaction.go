// Package model defines the core domain types shared across the application.
package model

import "github.com/shopspring/decimal"

// TransactionType labels the direction of money movement.
type TransactionType string

// Canonical transaction types.
const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// Transaction is the canonical, layout-independent form of a single
// statement entry. Amount is always non-negative; direction lives in Type.
type Transaction struct {
	Date        string           `json:"date"` // YYYY-MM-DD
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Type        TransactionType  `json:"type"`
	Balance     *decimal.Decimal `json:"balance,omitempty"` // running balance when the statement carries one
	Merchant    string           `json:"merchant"`
}
