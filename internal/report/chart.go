package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderExpenseChart renders a horizontal bar chart of expense magnitudes
// by category to a PNG file. Categories are drawn in the order given, so
// passing Summary.ExpensesByCategory keeps the smallest bar at the bottom.
func RenderExpenseChart(path, tag, currency string, categories []CategoryAmount) error {
	p := plot.New()
	p.Title.Text = "Expenses by Category — " + tag
	p.X.Label.Text = fmt.Sprintf("Amount (%s)", currency)

	values := make(plotter.Values, len(categories))
	names := make([]string, len(categories))
	for i, c := range categories {
		v, _ := c.Amount.Float64()
		values[i] = v
		names[i] = c.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.Horizontal = true
	p.Add(bars)
	p.NominalY(names...)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
