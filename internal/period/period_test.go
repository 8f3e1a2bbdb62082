package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	m, err := Parse("2024-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, time.January, m.Month)
	assert.Equal(t, "2024-01", m.String())
}

func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"2024", "2024-13", "01-2024", "2024-1-5", "january"} {
		_, err := Parse(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, "ALL", Tag(nil))

	m := Month{Year: 2024, Month: time.March}
	assert.Equal(t, "2024-03", Tag(&m))
}

func TestFilterNilPassesThrough(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 5)},
		{Date: date(2024, 2, 5)},
	}

	got, err := Filter(txns, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterKeepsMonth(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 1, 5), Description: "in"},
		{Date: date(2024, 2, 5), Description: "out"},
		{Date: date(2023, 1, 5), Description: "wrong year"},
	}

	m := Month{Year: 2024, Month: time.January}
	got, err := Filter(txns, &m)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Description)
}

func TestFilterEmptyMonthFails(t *testing.T) {
	txns := []model.Transaction{{Date: date(2024, 1, 5)}}

	m := Month{Year: 2024, Month: time.June}
	_, err := Filter(txns, &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-06")
}
