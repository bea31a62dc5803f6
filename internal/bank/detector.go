package bank

import (
	"regexp"
	"strings"

	"github.com/finfold/bankstat/internal/tabular"
)

// accountPattern pulls the digit run out of labels like "Account: 00123456"
// or "Account Number 4421". Case-insensitive; at least four digits.
var accountPattern = regexp.MustCompile(`(?i)account.*?(\d{4,})`)

// accountScanRows bounds the account-number search; the label sits in the
// preamble when it is present at all.
const accountScanRows = 5

// Detect matches the sheet's raw cell text plus the source filename against
// the institution table and returns the first hit with a masked account
// number. Sheets from unknown institutions report UnknownBank.
func Detect(sheet tabular.Sheet, filename string) (name, accountNumber string) {
	blob := buildBlob(sheet, filename)
	for _, inst := range Institutions() {
		for _, kw := range inst.Keywords {
			if containsKeyword(blob, kw) {
				return inst.Name, maskedAccount(sheet)
			}
		}
	}
	return UnknownBank, ""
}

// buildBlob lowercases every cell of the sheet and the filename into one
// searchable string.
func buildBlob(sheet tabular.Sheet, filename string) string {
	var b strings.Builder
	for _, h := range sheet.Headers {
		b.WriteString(strings.ToLower(h))
		b.WriteByte(' ')
	}
	for _, row := range sheet.Rows {
		for _, cell := range row {
			b.WriteString(strings.ToLower(cell))
			b.WriteByte(' ')
		}
	}
	b.WriteString(strings.ToLower(filename))
	return b.String()
}

// containsKeyword reports whether kw occurs in blob with non-letter
// boundaries on both sides, so "chase" matches "chase_statement.csv" but
// never the inside of "purchase".
func containsKeyword(blob, kw string) bool {
	for start := 0; ; {
		i := strings.Index(blob[start:], kw)
		if i < 0 {
			return false
		}
		i += start
		boundedLeft := i == 0 || !isASCIILetter(blob[i-1])
		boundedRight := i+len(kw) == len(blob) || !isASCIILetter(blob[i+len(kw)])
		if boundedLeft && boundedRight {
			return true
		}
		start = i + 1
	}
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// maskedAccount scans the leading rows for an account-number label and
// keeps only the last four digits.
func maskedAccount(sheet tabular.Sheet) string {
	limit := len(sheet.Rows)
	if limit > accountScanRows {
		limit = accountScanRows
	}
	for _, row := range sheet.Rows[:limit] {
		for _, cell := range row {
			if m := accountPattern.FindStringSubmatch(cell); m != nil {
				digits := m[1]
				return "****" + digits[len(digits)-4:]
			}
		}
	}
	return ""
}
