package report

import (
	"fmt"
	"io"
	"strings"
)

// topExpenseCount caps the ranked expense list in the markdown report.
const topExpenseCount = 10

// WriteMarkdown writes the human-readable report document: totals formatted
// to two decimal places (savings rate to one, with a percent sign), the top
// expense categories by magnitude, and two static usage notes.
func WriteMarkdown(w io.Writer, tag, currency string, s Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monthly Report — %s\n\n", tag)
	fmt.Fprintf(&b, "- **Income:** %s %s\n", currency, s.Income.StringFixed(2))
	fmt.Fprintf(&b, "- **Expenses:** %s %s\n", currency, s.Expenses.StringFixed(2))
	fmt.Fprintf(&b, "- **Savings:** %s %s\n", currency, s.Savings.StringFixed(2))
	fmt.Fprintf(&b, "- **Savings Rate:** %s%%\n", s.SavingsRate.StringFixed(1))

	b.WriteString("\n## Top Expense Categories\n\n")
	for _, c := range s.TopExpenses(topExpenseCount) {
		fmt.Fprintf(&b, "- %s: %s %s\n", c.Category, currency, c.Amount.StringFixed(2))
	}

	b.WriteString("\n## Notes\n")
	b.WriteString("- Categorization is keyword-based; adjust `categories.yml` as needed.\n")
	b.WriteString("- Use `--invert` if your bank exports expenses as positive numbers.\n")

	_, err := io.WriteString(w, b.String())
	return err
}
