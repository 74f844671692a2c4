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

type txCmd struct {
	period   string
	date     string
	category string
	all      bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `fin tx [-p <period>] [-d <date>] [-c <category>] [-all]

  Lists transactions, newest first, filtered to a period window and
  optionally to one category.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period window (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "", "Date inside the window (defaults to today).")
	f.StringVar(&c.category, "c", "", "Only this category.")
	f.BoolVar(&c.all, "all", false, "Ignore the period window, list everything.")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	s := ledger.Snapshot()

	var window *finbook.Range
	if !c.all {
		r, err := parseRangeFlags(c.period, c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		window = &r
	}

	var txs []finbook.Transaction
	if c.category != "" {
		cat, err := finbook.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		txs = finbook.TransactionsIn(s, cat, window)
	} else {
		for _, t := range s.Transactions {
			if window == nil || window.Contains(t.Date) {
				txs = append(txs, t)
			}
		}
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
