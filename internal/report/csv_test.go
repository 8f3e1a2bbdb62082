package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

func TestWriteTransactions(t *testing.T) {
	txns := []model.Transaction{
		txn(5, "KROGER #123", "-50.00", "groceries"),
		txn(10, "PAYROLL", "2000.00", "income"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TransactionsHeader, lines[0])
	assert.Equal(t, "2024-01-05,KROGER #123,-50.00,groceries,expense", lines[1])
	assert.Equal(t, "2024-01-10,PAYROLL,2000.00,income,income", lines[2])
}

func TestWriteCategoryExpenses(t *testing.T) {
	cats := []CategoryAmount{
		{Category: "subscriptions", Amount: dec("15.00")},
		{Category: "groceries", Amount: dec("80.00")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCategoryExpenses(&buf, cats))

	want := "category,amount\nsubscriptions,15.00\ngroceries,80.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWritesAreDeterministic(t *testing.T) {
	txns := []model.Transaction{
		txn(5, "KROGER", "-50.00", "groceries"),
		txn(10, "PAYROLL", "2000.00", "income"),
	}
	s := Aggregate(txns)

	var a, b bytes.Buffer
	require.NoError(t, WriteTransactions(&a, txns))
	require.NoError(t, WriteTransactions(&b, txns))
	assert.Equal(t, a.Bytes(), b.Bytes())

	a.Reset()
	b.Reset()
	require.NoError(t, WriteCategoryExpenses(&a, s.ExpensesByCategory))
	require.NoError(t, WriteCategoryExpenses(&b, s.ExpensesByCategory))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteMarkdown(t *testing.T) {
	s := Aggregate([]model.Transaction{
		txn(5, "KROGER", "-50.00", "groceries"),
		txn(10, "PAYROLL", "2000.00", "income"),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "2024-01", "USD", s))
	got := buf.String()

	assert.Contains(t, got, "# Monthly Report — 2024-01")
	assert.Contains(t, got, "- **Income:** USD 2000.00")
	assert.Contains(t, got, "- **Expenses:** USD 50.00")
	assert.Contains(t, got, "- **Savings:** USD 1950.00")
	assert.Contains(t, got, "- **Savings Rate:** 97.5%")
	assert.Contains(t, got, "## Top Expense Categories")
	assert.Contains(t, got, "- groceries: USD 50.00")
	assert.Contains(t, got, "## Notes")
}

func TestWriteMarkdownTopTenCap(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 12; i++ {
		c := string(rune('a' + i))
		txns = append(txns, txn(i%27+1, "X", "-10.00", c))
	}
	s := Aggregate(txns)

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "ALL", "USD", s))

	count := strings.Count(buf.String(), ": USD 10.00")
	assert.Equal(t, 10, count)
}
