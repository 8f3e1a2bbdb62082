package commands

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/budgeteer-dev/budgeteer/internal/config"
	"github.com/budgeteer-dev/budgeteer/internal/ingest"
	"github.com/budgeteer-dev/budgeteer/internal/period"
	"github.com/budgeteer-dev/budgeteer/internal/report"
	"github.com/budgeteer-dev/budgeteer/internal/rules"
)

// reportParams holds everything one report run needs.
type reportParams struct {
	csvPath        string
	month          string
	categoriesPath string
	settingsPath   string
	invert         bool
	outputDir      string
	stdout         io.Writer
}

// runReport executes the full pipeline: load config, ingest and normalize
// the CSV, categorize, filter to the requested month, aggregate, write the
// report bundle and print the one-line summary. Any failure terminates the
// run before output files are written.
func runReport(p reportParams, log *logrus.Logger) error {
	ruleSet, err := rules.Load(p.categoriesPath)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d category rules", ruleSet.Len())

	settings, err := config.LoadSettings(p.settingsPath)
	if err != nil {
		return err
	}

	txns, err := ingest.ReadFile(p.csvPath, ingest.Options{Invert: p.invert})
	if err != nil {
		return err
	}
	log.Debugf("parsed %d transactions from %s", len(txns), p.csvPath)

	for i := range txns {
		txns[i].Category = ruleSet.Categorize(txns[i].Description)
	}

	var m *period.Month
	if p.month != "" {
		parsed, err := period.Parse(p.month)
		if err != nil {
			return err
		}
		m = &parsed
	}

	txns, err = period.Filter(txns, m)
	if err != nil {
		return err
	}
	tag := period.Tag(m)
	log.Debugf("%d transactions in window %s", len(txns), tag)

	summary := report.Aggregate(txns)

	writer := report.NewWriter(p.outputDir, log)
	if err := writer.Write(tag, settings.Currency, txns, summary); err != nil {
		return err
	}

	fmt.Fprintf(p.stdout, "Done. Income=%s Expenses=%s SavingsRate=%s%%\n",
		summary.Income.StringFixed(2), summary.Expenses.StringFixed(2), summary.SavingsRate.StringFixed(1))
	fmt.Fprintf(p.stdout, "Wrote %s and CSV/plot files.\n", writer.MarkdownPath(tag))
	return nil
}
