package classify

import "github.com/finfold/bankstat/internal/tabular"

// sampleLimit bounds how many leading rows feed the column scores.
const sampleLimit = 10

// Unassigned marks a role with no matching column.
const Unassigned = -1

// Score accumulates predicate hits for one column across the sampled rows.
// The predicates are independent; a cell may count toward several scores.
type Score struct {
	DateHits   int
	AmountHits int
	TextHits   int
}

// Roles maps semantic column roles to column indexes. Indexes rather than
// header names keep duplicate headers unambiguous.
type Roles struct {
	Date        int
	Description int
	Amount      int
	Debit       int
	Credit      int
	Balance     int
}

// Classify scores a sheet's columns and assigns their semantic roles.
func Classify(sheet tabular.Sheet) Roles {
	return AssignRoles(ScoreColumns(sheet), SampleSize(len(sheet.Rows)))
}

// SampleSize returns how many of rowCount rows are sampled for scoring.
func SampleSize(rowCount int) int {
	if rowCount < sampleLimit {
		return rowCount
	}
	return sampleLimit
}

// ScoreColumns runs the content predicates over the sampled rows and
// returns one Score per header column.
func ScoreColumns(sheet tabular.Sheet) []Score {
	scores := make([]Score, len(sheet.Headers))
	sample := SampleSize(len(sheet.Rows))
	for ri := 0; ri < sample; ri++ {
		row := sheet.Rows[ri]
		for ci := range scores {
			v := row.Cell(ci)
			if LooksLikeDate(v) {
				scores[ci].DateHits++
			}
			if LooksLikeAmount(v) {
				scores[ci].AmountHits++
			}
			if LooksLikeText(v) {
				scores[ci].TextHits++
			}
		}
	}
	return scores
}

// AssignRoles turns column scores into role assignments. The pass is fully
// deterministic: each role is a forward scan keeping the first column with
// the best score, so equal scores always resolve to the earlier column.
func AssignRoles(scores []Score, sampleSize int) Roles {
	roles := Roles{
		Date:        Unassigned,
		Description: Unassigned,
		Amount:      Unassigned,
		Debit:       Unassigned,
		Credit:      Unassigned,
		Balance:     Unassigned,
	}

	bestDate := 0
	for i, s := range scores {
		if s.DateHits > bestDate {
			bestDate = s.DateHits
			roles.Date = i
		}
	}

	bestText := 0
	for i, s := range scores {
		if i == roles.Date {
			continue
		}
		if s.TextHits > bestText {
			bestText = s.TextHits
			roles.Description = i
		}
	}

	// Amount candidates must clear a majority of the sample; sporadic
	// numeric cells in a reference column do not qualify.
	var candidates []int
	for i, s := range scores {
		if i == roles.Date || i == roles.Description {
			continue
		}
		if s.AmountHits > sampleSize/2 {
			candidates = append(candidates, i)
		}
	}
	ordered := orderByAmountHits(candidates, scores)

	switch {
	case len(ordered) >= 2:
		roles.Debit = ordered[0]
		roles.Credit = ordered[1]
		if len(ordered) >= 3 {
			roles.Balance = ordered[2]
		}
	case len(ordered) == 1:
		roles.Amount = ordered[0]
	}
	return roles
}

// orderByAmountHits sorts candidate columns by descending AmountHits with an
// explicit selection pass. Ties keep column order; the result never depends
// on sort stability.
func orderByAmountHits(candidates []int, scores []Score) []int {
	ordered := make([]int, 0, len(candidates))
	used := make([]bool, len(candidates))
	for range candidates {
		best := -1
		for j, col := range candidates {
			if used[j] {
				continue
			}
			if best == -1 || scores[col].AmountHits > scores[candidates[best]].AmountHits {
				best = j
			}
		}
		used[best] = true
		ordered = append(ordered, candidates[best])
	}
	return ordered
}
