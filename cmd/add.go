package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	amount   string
	category string
	merchant string
	notes    string
	date     string
	income   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `fin add -amount <value> -c <category> [-m <merchant>] [-n <notes>] [-d <date>] [-income]

  Records a transaction and persists the ledger. The amount is a
  non-negative magnitude; use -income for money coming in.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. 12.99 (required).")
	f.StringVar(&c.category, "c", "Other", "Category, e.g. 'Food & Dining'.")
	f.StringVar(&c.merchant, "m", "", "Merchant name.")
	f.StringVar(&c.notes, "n", "", "Free-text notes.")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today).")
	f.BoolVar(&c.income, "income", false, "Record as income instead of expense.")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	if amount.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: amount must be a non-negative magnitude; use -income for incoming money")
		return subcommands.ExitUsageError
	}
	category, err := finbook.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	tx := finbook.Transaction{
		Amount:   finbook.M(amount),
		Category: category,
		Merchant: c.merchant,
		Notes:    c.notes,
		Income:   c.income,
	}
	if c.date != "" {
		d, err := finbook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		tx.Date = d
	}

	ledger, store := openLedger()
	tx = ledger.AddTransaction(tx)
	if err := ledger.Persist(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s at %q on %s (%s)\n", tx.Category, tx.Amount, tx.Merchant, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
