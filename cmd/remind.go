package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type remindCmd struct {
	within int
	send   bool
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "show or send upcoming payment reminders" }
func (*remindCmd) Usage() string {
	return `fin remind [-within <days>] [-send]

  Lists payment reminders due within the horizon, today included. With
  -send, each due reminder and each approaching budget is delivered to
  the notification sink.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.within, "within", 7, "Horizon in days.")
	f.BoolVar(&c.send, "send", false, "Deliver notifications instead of only listing them.")
}

func (c *remindCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	s := ledger.Snapshot()
	now := finbook.Today()

	due := finbook.DueReminders(s, now, c.within)
	printMarkdown(renderer.Reminders(due))

	if c.send {
		sink := finbook.LogNotifier{Log: zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()}
		finbook.SendReminders(s, sink, now, c.within)
		finbook.RefreshBudgetAlerts(s, sink, finbook.DefaultAlertThreshold)
	}
	return subcommands.ExitSuccess
}
