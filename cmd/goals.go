package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show savings goal progress" }
func (*goalsCmd) Usage() string {
	return `fin goals

  Shows every savings goal with its funded ratio and target date.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	printMarkdown(renderer.Goals(ledger.SavingsGoals()))
	return subcommands.ExitSuccess
}
