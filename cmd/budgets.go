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

type budgetsCmd struct {
	threshold   float64
	approaching bool
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "show budget consumption" }
func (*budgetsCmd) Usage() string {
	return `fin budgets [-approaching] [-threshold <ratio>]

  Shows spent, remaining and consumption ratio for every budget in its
  current window. With -approaching, only budgets at or above the
  threshold are listed.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.threshold, "threshold", finbook.DefaultAlertThreshold, "Consumption ratio that counts as approaching.")
	f.BoolVar(&c.approaching, "approaching", false, "Only budgets at or above the threshold.")
}

func (c *budgetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	s := ledger.Snapshot()

	progress := finbook.AllProgress(s)
	if c.approaching {
		var kept []finbook.BudgetProgress
		for _, p := range progress {
			if p.Ratio >= c.threshold {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			fmt.Fprintf(os.Stderr, "No budget at or above %.0f%% of its limit.\n", c.threshold*100)
			return subcommands.ExitSuccess
		}
		progress = kept
	}

	printMarkdown(renderer.Budgets(progress))
	return subcommands.ExitSuccess
}
