package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type distributionCmd struct {
	period string
	date   string
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "show spending share per category" }
func (*distributionCmd) Usage() string {
	return `fin distribution [-p <period>] [-d <date>]

  Shows how spending splits across categories within a period window.
  Shares sum to one; categories with no spending are omitted.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period window (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "", "Date inside the window (defaults to today).")
}

func (c *distributionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRangeFlags(c.period, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, _ := openLedger()
	shares := finbook.SpendingDistribution(ledger.Snapshot(), r)
	printMarkdown(renderer.Distribution(r, shares))
	return subcommands.ExitSuccess
}
