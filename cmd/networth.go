package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type networthCmd struct {
	history int
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "show net worth and its history" }
func (*networthCmd) Usage() string {
	return `fin networth [-history <months>]

  Shows assets minus debts today, and a month-end history ending with
  today's figure.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.history, "history", 12, "Months of history to show.")
}

func (c *networthCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	s := ledger.Snapshot()
	now := finbook.Today()

	current := finbook.NetWorthAt(s, now)
	history := finbook.NetWorthHistory(s, c.history, now)
	printMarkdown(renderer.NetWorth(current, history))
	return subcommands.ExitSuccess
}
