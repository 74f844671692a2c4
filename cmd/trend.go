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

type trendCmd struct {
	period string
	count  int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show income and spending over time" }
func (*trendCmd) Usage() string {
	return `fin trend [-p <period>] [-n <count>]

  Shows income, expenses and net per period window, oldest first,
  ending with the window containing today.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Window size (day, week, month, quarter, year).")
	f.IntVar(&c.count, "n", 6, "Number of windows.")
}

func (c *trendCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := finbook.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, _ := openLedger()
	points := finbook.TrendAnalysis(ledger.Snapshot(), p, c.count, finbook.Today())
	printMarkdown(renderer.Trend(points))
	return subcommands.ExitSuccess
}
