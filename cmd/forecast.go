package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type forecastCmd struct {
	months int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project future monthly spending" }
func (*forecastCmd) Usage() string {
	return `fin forecast [-months <n>]

  Projects spending for the coming months from the recent monthly
  average. With no spending history the forecast is empty.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Number of months to project.")
}

func (c *forecastCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _ := openLedger()
	points := finbook.ForecastSpending(ledger.Snapshot(), c.months, finbook.Today())
	printMarkdown(renderer.Forecast(points))
	return subcommands.ExitSuccess
}
