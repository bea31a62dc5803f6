package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "debit card prefix and card digits",
			input:    "DEBIT CARD PURCHASE STARBUCKS 4821",
			expected: "STARBUCKS",
		},
		{
			name:     "credit card prefix",
			input:    "CREDIT CARD PURCHASE AMAZON MARKETPLACE",
			expected: "AMAZON MARKETPLACE",
		},
		{
			name:     "pos prefix with terminal digits",
			input:    "POS WHOLE FOODS MARKET 1123",
			expected: "WHOLE FOODS MARKET",
		},
		{
			name:     "atm prefix truncated to three tokens",
			input:    "ATM WITHDRAWAL MAIN ST BRANCH",
			expected: "WITHDRAWAL MAIN ST",
		},
		{
			name:     "reference token stripped",
			input:    "CHECK #1234",
			expected: "CHECK",
		},
		{
			name:     "prefix is matched on token boundary",
			input:    "POSTAGE STAMPS",
			expected: "POSTAGE STAMPS",
		},
		{
			name:     "lowercase prefix stripped case-insensitively",
			input:    "pos starbucks",
			expected: "starbucks",
		},
		{
			name:     "long description truncated",
			input:    "TST* DOORDASH ORDER 99887 SAN FRANCISCO CA",
			expected: "TST* DOORDASH ORDER",
		},
		{
			name:     "everything stripped falls back to the original",
			input:    "DEBIT CARD PURCHASE",
			expected: "DEBIT CARD PURCHASE",
		},
		{
			name:     "clean name untouched",
			input:    "NETFLIX.COM",
			expected: "NETFLIX.COM",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  SALARY ACME CORP  ",
			expected: "SALARY ACME CORP",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMerchant(tt.input))
		})
	}
}
