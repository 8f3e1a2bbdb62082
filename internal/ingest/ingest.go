// Package ingest reads a transactions CSV into model.Transactions,
// normalizing heterogeneous column names and coercing dates and amounts.
// Validation is all-or-nothing: any unparseable row fails the whole read.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/budgeteer-dev/budgeteer/internal/model"
)

// Options controls how a transactions CSV is interpreted.
type Options struct {
	// Invert negates every amount after parsing, for sources that export
	// expenses as positive values.
	Invert bool
}

// ReadFile opens and parses a transactions CSV.
func ReadFile(path string, opts Options) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions CSV: %w", err)
	}
	defer f.Close()

	txns, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txns, nil
}

// Read parses a transactions CSV from r. The first record is the header;
// each following record becomes one Transaction with its Type derived from
// the amount sign. Category is left empty for the categorization stage.
func Read(r io.Reader, opts Options) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("transactions CSV is empty")
	}

	cols, err := normalizeHeader(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		row := i + 2 // 1-based, after the header

		date, err := ParseDate(rec[cols.date])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		amount, err := ParseAmount(rec[cols.amount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if opts.Invert {
			amount = amount.Neg()
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: strings.TrimSpace(rec[cols.description]),
			Amount:      amount,
			Type:        model.ClassifyAmount(amount),
		})
	}
	return txns, nil
}
