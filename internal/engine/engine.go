// Package engine orchestrates statement parsing end to end: decoding the
// container format, classifying and normalizing every sheet, choosing the
// sheet that actually holds the transactions, and aggregating the result.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/finfold/bankstat/internal/bank"
	"github.com/finfold/bankstat/internal/classify"
	"github.com/finfold/bankstat/internal/common"
	"github.com/finfold/bankstat/internal/model"
	"github.com/finfold/bankstat/internal/normalize"
	"github.com/finfold/bankstat/internal/tabular"
)

// Engine turns raw statement exports into ParseResults. An Engine holds no
// per-parse state beyond its clock, so one instance serves concurrent
// callers.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an Engine with a fixed processing clock, pinning the
// date that unparseable date cells fall back to.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// ParseFile derives the file type from the filename extension and parses.
func (e *Engine) ParseFile(data []byte, filename string) (*model.ParseResult, error) {
	fileType, err := tabular.DetectFileType(filename)
	if err != nil {
		return failure(err), err
	}
	return e.Parse(data, filename, fileType)
}

// Parse decodes data as the declared type and extracts canonical
// transactions. Systemic failures return both an error and a failed
// ParseResult carrying the message; per-row problems never surface here.
func (e *Engine) Parse(data []byte, filename string, fileType tabular.FileType) (*model.ParseResult, error) {
	sheets, err := tabular.Load(data, fileType)
	if err != nil {
		return failure(err), err
	}

	winner, transactions := e.selectSheet(sheets)
	if len(transactions) == 0 {
		err := fmt.Errorf("%w from %s", common.ErrNoTransactions, filename)
		return failure(err), err
	}

	result := &model.ParseResult{
		Success:      true,
		Transactions: transactions,
	}
	aggregate(result)
	result.DetectedBank, result.AccountNumber = bank.Detect(sheets[winner], filename)

	slog.Info("parsed statement",
		"file", filename,
		"type", string(fileType),
		"sheets", len(sheets),
		"winning_sheet", sheets[winner].Name,
		"transactions", len(transactions),
		"bank", result.DetectedBank)

	return result, nil
}

// selectSheet extracts transactions from every sheet and keeps the sheet
// yielding the most. Each sheet is classified independently; a workbook's
// summary tab can precede the real register, so every sheet must be tried.
// Ties keep the earlier sheet.
func (e *Engine) selectSheet(sheets []tabular.Sheet) (int, []model.Transaction) {
	normalizer := normalize.NewWithClock(e.now)

	winner := 0
	var best []model.Transaction
	for i, sheet := range sheets {
		transactions := extract(normalizer, sheet)
		slog.Debug("scored sheet",
			"sheet", sheet.Name,
			"rows", len(sheet.Rows),
			"transactions", len(transactions))
		if len(transactions) > len(best) {
			winner = i
			best = transactions
		}
	}
	return winner, best
}

// extract runs classification and row normalization over a single sheet.
func extract(normalizer *normalize.Normalizer, sheet tabular.Sheet) []model.Transaction {
	roles := classify.Classify(sheet)
	var transactions []model.Transaction
	for _, row := range sheet.Rows {
		if tx, ok := normalizer.Row(row, roles); ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions
}

// failure wraps a systemic error as a failed ParseResult. Transactions is
// kept non-nil so the JSON form is an empty array rather than null.
func failure(err error) *model.ParseResult {
	return &model.ParseResult{
		Success:      false,
		Transactions: []model.Transaction{},
		Error:        err.Error(),
	}
}
