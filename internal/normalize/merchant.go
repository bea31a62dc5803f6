package normalize

import (
	"regexp"
	"strings"
)

// merchantPrefixes are transaction-channel labels that precede the actual
// merchant name. Compared upper-cased; the first match is stripped.
var merchantPrefixes = []string{
	"DEBIT CARD PURCHASE",
	"CREDIT CARD PURCHASE",
	"POS",
	"ATM",
}

var (
	// trailingCardDigits drops the 4-digit card or terminal suffix banks
	// append after the merchant name.
	trailingCardDigits = regexp.MustCompile(`\s+\d{4}$`)

	// trailingReference drops trailing reference tokens like "#00231".
	trailingReference = regexp.MustCompile(`\s*#\d+$`)
)

// maxMerchantTokens caps the merchant name length.
const maxMerchantTokens = 3

// ExtractMerchant distills a short merchant name from a raw description.
// When everything strips away, the original description is returned rather
// than an empty name.
func ExtractMerchant(description string) string {
	name := strings.TrimSpace(description)

	upper := strings.ToUpper(name)
	for _, prefix := range merchantPrefixes {
		if !strings.HasPrefix(upper, prefix) {
			continue
		}
		rest := name[len(prefix):]
		// Token boundary: "POS" must not eat into "POSTAGE".
		if rest == "" || rest[0] == ' ' {
			name = strings.TrimSpace(rest)
		}
		break
	}

	name = trailingCardDigits.ReplaceAllString(name, "")
	name = trailingReference.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if tokens := strings.Fields(name); len(tokens) > maxMerchantTokens {
		name = strings.Join(tokens[:maxMerchantTokens], " ")
	}

	if name == "" {
		return strings.TrimSpace(description)
	}
	return name
}
