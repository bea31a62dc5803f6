package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finfold/bankstat/internal/classify"
	"github.com/finfold/bankstat/internal/model"
	"github.com/finfold/bankstat/internal/tabular"
)

// resolveAmount extracts the row's amount and direction. Split debit/credit
// columns win over a single amount column; with neither assigned, the row is
// scanned for the first amount-looking cell. A populated debit cell always
// beats the credit cell, so rows carrying both resolve as debits.
func resolveAmount(row tabular.Row, roles classify.Roles) (decimal.Decimal, model.TransactionType, bool) {
	switch {
	case roles.Debit != classify.Unassigned && roles.Credit != classify.Unassigned:
		if v, ok := parseCleanDecimal(row.Cell(roles.Debit)); ok && !v.IsZero() {
			return v.Abs(), model.Debit, true
		}
		if v, ok := parseCleanDecimal(row.Cell(roles.Credit)); ok && !v.IsZero() {
			return v.Abs(), model.Credit, true
		}
		return decimal.Decimal{}, "", false

	case roles.Amount != classify.Unassigned:
		return signedAmount(row.Cell(roles.Amount))

	default:
		for i := range row {
			if i == roles.Date || i == roles.Description {
				continue
			}
			if classify.LooksLikeAmount(row[i]) {
				return signedAmount(row[i])
			}
		}
		return decimal.Decimal{}, "", false
	}
}

// signedAmount parses a single signed amount cell: negative values are
// debits, positive values credits. Unsigned statements get every amount
// reported as a credit; there is nothing in a bare "45.20" to say otherwise.
func signedAmount(cell string) (decimal.Decimal, model.TransactionType, bool) {
	v, ok := parseCleanDecimal(cell)
	if !ok || v.IsZero() {
		return decimal.Decimal{}, "", false
	}
	if v.IsNegative() {
		return v.Abs(), model.Debit, true
	}
	return v, model.Credit, true
}

// parseCleanDecimal strips everything outside [0-9.-] from a cell and
// parses the remainder. Currency symbols, separators, and stray labels all
// fall away; values like "12.31.2024" still fail the decimal parse.
func parseCleanDecimal(v string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, v)
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
