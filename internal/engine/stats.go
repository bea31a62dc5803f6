package engine

import (
	"github.com/shopspring/decimal"

	"github.com/finfold/bankstat/internal/model"
)

// aggregate fills the result's totals and statement period from its
// transactions. Totals are rounded half away from zero to cents; the
// period bounds are the lexicographic min and max of the ISO dates.
func aggregate(result *model.ParseResult) {
	var credits, debits decimal.Decimal
	for i, tx := range result.Transactions {
		switch tx.Type {
		case model.Credit:
			credits = credits.Add(tx.Amount)
		case model.Debit:
			debits = debits.Add(tx.Amount)
		}
		if i == 0 || tx.Date < result.PeriodStart {
			result.PeriodStart = tx.Date
		}
		if i == 0 || tx.Date > result.PeriodEnd {
			result.PeriodEnd = tx.Date
		}
	}
	result.TotalCredits = credits.Round(2)
	result.TotalDebits = debits.Round(2)
}
