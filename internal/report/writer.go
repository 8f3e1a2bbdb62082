package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

// outputsDir holds the CSV tables and the markdown report.
const outputsDir = "outputs"

// plotsDir holds the rendered charts.
const plotsDir = "plots"

// Writer writes the report bundle under a root directory. Every write is an
// idempotent overwrite keyed by the month tag.
type Writer struct {
	root string
	log  *logrus.Logger
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string, log *logrus.Logger) *Writer {
	return &Writer{root: dir, log: log}
}

// TransactionsPath returns the path of the categorized transaction table.
func (w *Writer) TransactionsPath(tag string) string {
	return filepath.Join(w.root, outputsDir, fmt.Sprintf("transactions_%s.csv", tag))
}

// CategoryExpensesPath returns the path of the per-category expense table.
func (w *Writer) CategoryExpensesPath(tag string) string {
	return filepath.Join(w.root, outputsDir, fmt.Sprintf("category_expenses_%s.csv", tag))
}

// MarkdownPath returns the path of the markdown report document.
func (w *Writer) MarkdownPath(tag string) string {
	return filepath.Join(w.root, outputsDir, fmt.Sprintf("monthly_report_%s.md", tag))
}

// ChartPath returns the path of the expenses-by-category chart.
func (w *Writer) ChartPath(tag string) string {
	return filepath.Join(w.root, plotsDir, fmt.Sprintf("expenses_by_category_%s.png", tag))
}

// Write creates the output directories and writes the full bundle for one
// run: transaction table, category expense table, markdown report and, when
// at least one expense category exists, the bar chart. A window with no
// expense categories skips the chart without error.
func (w *Writer) Write(tag, currency string, txns []model.Transaction, s Summary) error {
	for _, d := range []string{outputsDir, plotsDir} {
		if err := os.MkdirAll(filepath.Join(w.root, d), 0o755); err != nil {
			return fmt.Errorf("creating %s dir: %w", d, err)
		}
	}

	if err := w.writeFile(w.TransactionsPath(tag), func(f *os.File) error {
		return WriteTransactions(f, txns)
	}); err != nil {
		return fmt.Errorf("writing transactions table: %w", err)
	}

	if err := w.writeFile(w.CategoryExpensesPath(tag), func(f *os.File) error {
		return WriteCategoryExpenses(f, s.ExpensesByCategory)
	}); err != nil {
		return fmt.Errorf("writing category expenses table: %w", err)
	}

	if err := w.writeFile(w.MarkdownPath(tag), func(f *os.File) error {
		return WriteMarkdown(f, tag, currency, s)
	}); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}

	if len(s.ExpensesByCategory) == 0 {
		w.log.Debug("no expense categories; skipping chart")
		return nil
	}
	if err := RenderExpenseChart(w.ChartPath(tag), tag, currency, s.ExpensesByCategory); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func (w *Writer) writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
