// Package period handles the month window a report is scoped to and the
// tag ("YYYY-MM" or "ALL") used to namespace output filenames.
package period

import (
	"fmt"
	"time"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

// AllTag is the filename tag used when no month filter is applied.
const AllTag = "ALL"

const monthLayout = "2006-01"

// Month is a calendar month restricting a report window.
type Month struct {
	Year  int
	Month time.Month
}

// Parse validates a "YYYY-MM" month string.
func Parse(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Tag returns the output filename tag for an optional month: the month
// string when set, AllTag when nil.
func Tag(m *Month) string {
	if m == nil {
		return AllTag
	}
	return m.String()
}

// Filter retains only transactions dated within month. A nil month passes
// the input through unchanged. A month that matches no rows is an error so
// the run stops before writing any output.
func Filter(txns []model.Transaction, m *Month) ([]model.Transaction, error) {
	if m == nil {
		return txns, nil
	}

	var out []model.Transaction
	for _, t := range txns {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no transactions found for %s", m)
	}
	return out, nil
}
