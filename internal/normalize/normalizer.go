// Package normalize converts classified statement rows into canonical
// transactions. Rows are handled best-effort: anything without a usable
// date and a non-zero amount is dropped rather than failing the parse.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/finfold/bankstat/internal/classify"
	"github.com/finfold/bankstat/internal/model"
	"github.com/finfold/bankstat/internal/tabular"
)

// defaultDescription stands in when a row has no text cell at all.
const defaultDescription = "Transaction"

// isoDate is the output layout for every normalized date.
const isoDate = "2006-01-02"

// Normalizer turns raw rows into transactions. The zero clock is time.Now;
// tests pin it to keep the unparseable-date fallback reproducible.
type Normalizer struct {
	now func() time.Time
}

// New returns a Normalizer using the wall clock.
func New() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewWithClock returns a Normalizer with a fixed processing clock.
func NewWithClock(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Row converts one sheet row into a Transaction under the assigned roles.
// The boolean reports whether the row yielded a transaction; rows with an
// empty date value or without a usable non-zero amount are discarded.
func (n *Normalizer) Row(row tabular.Row, roles classify.Roles) (model.Transaction, bool) {
	rawDate, dateIdx := dateCell(row, roles)
	if strings.TrimSpace(rawDate) == "" {
		return model.Transaction{}, false
	}

	description := descriptionCell(row, roles, dateIdx)

	amount, txType, ok := resolveAmount(row, roles)
	if !ok {
		return model.Transaction{}, false
	}

	tx := model.Transaction{
		Date:        n.normalizeDate(rawDate),
		Description: description,
		Amount:      amount,
		Type:        txType,
		Merchant:    ExtractMerchant(description),
	}
	if roles.Balance != classify.Unassigned {
		if balance, ok := parseCleanDecimal(row.Cell(roles.Balance)); ok {
			tx.Balance = &balance
		}
	}
	return tx, true
}

// dateCell picks the raw date value: the assigned date column when there is
// one, otherwise the first cell that looks like a date. Returns the cell
// index so the description fallback can skip it.
func dateCell(row tabular.Row, roles classify.Roles) (string, int) {
	if roles.Date != classify.Unassigned {
		return row.Cell(roles.Date), roles.Date
	}
	for i := range row {
		if classify.LooksLikeDate(row[i]) {
			return row[i], i
		}
	}
	return "", classify.Unassigned
}

// descriptionCell picks the transaction description: the assigned column if
// any, else the first text-looking cell that is not the date cell.
func descriptionCell(row tabular.Row, roles classify.Roles, dateIdx int) string {
	if roles.Description != classify.Unassigned {
		return strings.TrimSpace(row.Cell(roles.Description))
	}
	for i := range row {
		if i == dateIdx {
			continue
		}
		if classify.LooksLikeText(row[i]) {
			return strings.TrimSpace(row[i])
		}
	}
	return defaultDescription
}

// normalizeDate renders a non-empty raw date cell as YYYY-MM-DD. Values no
// layout accepts are stamped with the processing date instead of failing
// the row; a wrong-but-present date keeps the transaction visible.
func (n *Normalizer) normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if t, ok := classify.ParseDate(raw); ok {
		return t.Format(isoDate)
	}
	if t, ok := parseSlashTriplet(raw); ok {
		return t.Format(isoDate)
	}
	return n.now().Format(isoDate)
}

// parseSlashTriplet reads a slash-separated triplet as month/day/year, the
// order US statements overwhelmingly use. Two-digit years land in 20xx.
// Out-of-range days roll over the way time.Date normalizes them.
func parseSlashTriplet(v string) (time.Time, bool) {
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
