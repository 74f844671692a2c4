package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/scan"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type scanCmd struct {
	file     string
	category string
	gemini   bool
	add      bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "scan a receipt, optionally recording a transaction" }
func (*scanCmd) Usage() string {
	return `fin scan -f <file> [-gemini] [-add] [-c <category>]

  Extracts merchant, total and purchase date from a receipt. By default the
  file is treated as plain text; with -gemini the image is sent to the
  Gemini API (GEMINI_API_KEY must be set). With -add, a transaction
  prefilled from the extraction is recorded.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Receipt file (required).")
	f.StringVar(&c.category, "c", "Other", "Category for the recorded transaction.")
	f.BoolVar(&c.gemini, "gemini", false, "Use the Gemini vision API for extraction.")
	f.BoolVar(&c.add, "add", false, "Record a transaction from the extraction.")
}

func (c *scanCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var scanner scan.Scanner = scan.TextScanner{}
	if c.gemini {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		scanner = &scan.GeminiScanner{Client: client}
	}

	result, err := scanner.Scan(ctx, data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Merchant: %s\n", orUnknown(result.Merchant))
	if result.Total != nil {
		fmt.Printf("Total:    %s\n", finbook.M(*result.Total))
	} else {
		fmt.Println("Total:    (not found)")
	}
	if result.PurchaseDate != nil {
		fmt.Printf("Date:     %s\n", *result.PurchaseDate)
	} else {
		fmt.Println("Date:     (not found)")
	}

	if !c.add {
		return subcommands.ExitSuccess
	}
	if result.Total == nil {
		fmt.Fprintln(os.Stderr, "Error: no total extracted, not recording a transaction")
		return subcommands.ExitFailure
	}
	category, err := finbook.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	receipt := result.Receipt(c.file)
	tx := finbook.Transaction{
		Amount:   finbook.M(*result.Total),
		Category: category,
		Merchant: result.Merchant,
		Receipt:  &receipt,
	}
	if result.PurchaseDate != nil {
		tx.Date = *result.PurchaseDate
	}

	ledger, store := openLedger()
	tx = ledger.AddTransaction(tx)
	if err := ledger.Persist(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s at %q on %s\n", tx.Category, tx.Amount, tx.Merchant, tx.Date)
	return subcommands.ExitSuccess
}

func orUnknown(s string) string {
	if s == "" {
		return "(not found)"
	}
	return s
}
