// Package report aggregates categorized transactions and writes the report
// bundle: CSV tables, a markdown document and a bar chart.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

// CategoryAmount pairs a category label with an aggregated amount.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Summary holds the aggregate metrics for one report window.
type Summary struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal // positive magnitude
	Savings     decimal.Decimal
	SavingsRate decimal.Decimal // percent; zero when income is non-positive

	// ByCategory is the signed per-category sum over all transactions,
	// ascending by amount.
	ByCategory []CategoryAmount

	// ExpensesByCategory is the expense-only per-category magnitude,
	// ascending by amount.
	ExpensesByCategory []CategoryAmount
}

var hundred = decimal.NewFromInt(100)

// Aggregate computes totals and per-category sums over categorized
// transactions. Income is the sum of positive amounts, Expenses the negated
// sum of negative amounts, Savings their difference. The savings rate is
// zero when income is non-positive, avoiding a division by zero.
func Aggregate(txns []model.Transaction) Summary {
	var income, expenses decimal.Decimal
	signed := make(map[string]decimal.Decimal)
	expenseSums := make(map[string]decimal.Decimal)

	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expenses = expenses.Sub(t.Amount)
			expenseSums[t.Category] = expenseSums[t.Category].Sub(t.Amount)
		}
		signed[t.Category] = signed[t.Category].Add(t.Amount)
	}

	savings := income.Sub(expenses)
	var rate decimal.Decimal
	if income.IsPositive() {
		rate = savings.Div(income).Mul(hundred)
	}

	return Summary{
		Income:             income,
		Expenses:           expenses,
		Savings:            savings,
		SavingsRate:        rate,
		ByCategory:         sortedAscending(signed),
		ExpensesByCategory: sortedAscending(expenseSums),
	}
}

// TopExpenses returns up to n expense categories, largest magnitude first.
func (s Summary) TopExpenses(n int) []CategoryAmount {
	top := make([]CategoryAmount, len(s.ExpensesByCategory))
	copy(top, s.ExpensesByCategory)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Amount.GreaterThan(top[j].Amount)
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// sortedAscending flattens a category sum map into a slice sorted
// ascending by amount, ties broken by category name so output order is
// deterministic across runs.
func sortedAscending(sums map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.LessThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
