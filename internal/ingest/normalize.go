package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical column names every transactions CSV must resolve to.
const (
	ColDate        = "date"
	ColDescription = "description"
	ColAmount      = "amount"
)

// columnAliases maps known header synonyms onto canonical column names.
// Comparison happens after lowercasing and trimming the raw header cell.
var columnAliases = map[string]string{
	"posted date":      ColDate,
	"transaction date": ColDate,
	"details":          ColDescription,
	"memo":             ColDescription,
	"amount (usd)":     ColAmount,
	"debit":            ColAmount,
	"credit":           ColAmount,
}

// columns holds the resolved index of each canonical column in the raw
// header row.
type columns struct {
	date        int
	description int
	amount      int
}

// normalizeHeader lowercases and trims each header cell, maps known
// synonyms onto canonical names, and locates the date, description and
// amount columns. When a synonym appears more than once (e.g. both debit
// and credit) the first occurrence wins. Missing canonical columns are a
// schema error.
func normalizeHeader(header []string) (columns, error) {
	found := make(map[string]int, 3)
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, seen := found[name]; !seen {
			found[name] = i
		}
	}

	var missing []string
	for _, need := range []string{ColDate, ColDescription, ColAmount} {
		if _, ok := found[need]; !ok {
			missing = append(missing, need)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return columns{}, fmt.Errorf("CSV must include date, description, amount columns (case-insensitive); missing: %s",
			strings.Join(missing, ", "))
	}

	return columns{
		date:        found[ColDate],
		description: found[ColDescription],
		amount:      found[ColAmount],
	}, nil
}
