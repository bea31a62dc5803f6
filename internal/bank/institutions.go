// Package bank identifies the issuing institution of a parsed statement.
package bank

// Institution pairs a display name with the lowercase keywords that betray
// it in statement text or filenames.
type Institution struct {
	Name     string
	Keywords []string
}

// UnknownBank is reported when no institution keyword matches.
const UnknownBank = "Unknown Bank"

// Institutions returns the known-institution table. Order matters: the
// table is scanned top to bottom and the first keyword match wins, so more
// specific entries must precede generic ones.
func Institutions() []Institution {
	return []Institution{
		{Name: "Chase", Keywords: []string{"chase", "jpmorgan", "jp morgan"}},
		{Name: "Bank of America", Keywords: []string{"bank of america", "bankofamerica", "bofa"}},
		{Name: "Wells Fargo", Keywords: []string{"wells fargo", "wellsfargo"}},
		{Name: "Citibank", Keywords: []string{"citibank", "citigroup", "citi bank"}},
		{Name: "Capital One", Keywords: []string{"capital one", "capitalone"}},
		{Name: "American Express", Keywords: []string{"american express", "amex"}},
		{Name: "Discover", Keywords: []string{"discover bank", "discover card", "discover"}},
		{Name: "U.S. Bank", Keywords: []string{"u.s. bank", "us bank", "usbank"}},
		{Name: "PNC Bank", Keywords: []string{"pnc bank", "pnc"}},
		{Name: "TD Bank", Keywords: []string{"td bank", "tdbank"}},
		{Name: "Truist", Keywords: []string{"truist", "suntrust", "bb&t"}},
		{Name: "Fifth Third Bank", Keywords: []string{"fifth third", "53.com"}},
		{Name: "Ally Bank", Keywords: []string{"ally bank", "ally financial"}},
		{Name: "Charles Schwab", Keywords: []string{"charles schwab", "schwab"}},
		{Name: "HSBC", Keywords: []string{"hsbc"}},
	}
}
