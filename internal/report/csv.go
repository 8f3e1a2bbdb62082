package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

// TransactionsHeader is the CSV header for the categorized transactions table.
const TransactionsHeader = "date,description,amount,category,type"

// CategoryExpensesHeader is the CSV header for the per-category expense table.
const CategoryExpensesHeader = "category,amount"

const dateFormat = "2006-01-02"

// WriteTransactions writes the categorized transaction table as CSV,
// header included. Amounts are fixed to two decimal places so reruns over
// identical input produce identical bytes.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		rec := []string{
			t.Date.Format(dateFormat),
			t.Description,
			t.Amount.StringFixed(2),
			t.Category,
			string(t.Type),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteCategoryExpenses writes per-category expense magnitudes as CSV with
// an explicit header, in the order given.
func WriteCategoryExpenses(w io.Writer, categories []CategoryAmount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CategoryExpensesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range categories {
		if err := cw.Write([]string{c.Category, c.Amount.StringFixed(2)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
