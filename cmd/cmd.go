// Package cmd implements the fin subcommands. Every command is a direct
// call against the ledger and the aggregation functions; there is no
// network surface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// EnvSnapshotFile overrides the snapshot file location.
const EnvSnapshotFile = "FINBOOK_FILE"

// Commands lists every fin subcommand, in help order.
var Commands = []subcommands.Command{
	&txCmd{},
	&addCmd{},
	&scanCmd{},
	&budgetsCmd{},
	&trendCmd{},
	&distributionCmd{},
	&forecastCmd{},
	&networthCmd{},
	&goalsCmd{},
	&remindCmd{},
}

// snapshotPath returns the snapshot file location: $FINBOOK_FILE, or
// ~/.finbook/finance-data.json.
func snapshotPath() string {
	if p := os.Getenv(EnvSnapshotFile); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "finance-data.json"
	}
	return filepath.Join(home, ".finbook", "finance-data.json")
}

// openLedger loads the ledger from the snapshot file. Loading fails soft:
// with no usable snapshot the ledger starts from the sample dataset.
func openLedger() (*finbook.Ledger, *finbook.FileStore) {
	store := finbook.NewFileStore(snapshotPath())
	ledger := finbook.NewLedger()
	ledger.Load(store)
	return ledger, store
}

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw markdown when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseRangeFlags resolves the conventional -p/-d flags into a range:
// the period window (default monthly) containing the date (default today).
func parseRangeFlags(period, date string) (finbook.Range, error) {
	p := finbook.Monthly
	if period != "" {
		var err error
		p, err = finbook.ParsePeriod(period)
		if err != nil {
			return finbook.Range{}, err
		}
	}
	d := finbook.Today()
	if date != "" {
		var err error
		d, err = finbook.ParseDate(date)
		if err != nil {
			return finbook.Range{}, err
		}
	}
	return p.Range(d), nil
}
