// Package scan extracts transaction details from purchase receipts.
//
// The core ledger never depends on this package; it only consumes the
// Result shape through the records it stores.
package scan

import (
	"context"
	"regexp"
	"strings"

	"github.com/finbook/finbook"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the outcome of scanning one receipt. Extraction fields are
// optional: a scan can legitimately produce text and nothing else.
type Result struct {
	Text         string
	Total        *decimal.Decimal
	Merchant     string
	PurchaseDate *finbook.Date
}

// Scanner turns a receipt image into a Result.
type Scanner interface {
	Scan(ctx context.Context, image []byte) (Result, error)
}

var amountRE = regexp.MustCompile(`([0-9]+[.,][0-9]{2})`)

// dateRE accepts the common receipt date spellings 2024-01-31, 31/01/2024
// and 01/31/2024.
var dateRE = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})|(\d{1,2})/(\d{1,2})/(\d{4})`)

// TextScanner treats the image bytes as already-extracted plain text. It is
// the fallback used when no OCR backend is configured, and the parser every
// backend funnels its raw text through.
type TextScanner struct{}

func (TextScanner) Scan(_ context.Context, image []byte) (Result, error) {
	return ParseText(string(image)), nil
}

// ParseText applies line heuristics to raw receipt text: the first
// plausible line names the merchant, the amount on the first line saying
// "total" is the total (falling back to the first amount seen), the first
// parseable date is the purchase date.
func ParseText(text string) Result {
	res := Result{Text: text}
	totalFound := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		isTotalLine := strings.Contains(strings.ToLower(line), "total")
		if res.Merchant == "" && len(line) > 3 && !isTotalLine {
			res.Merchant = line
		}
		if !totalFound && (res.Total == nil || isTotalLine) {
			if m := amountRE.FindString(line); m != "" {
				if d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ".")); err == nil {
					res.Total = &d
					totalFound = isTotalLine
				}
			}
		}
		if res.PurchaseDate == nil {
			if d, ok := findDate(line); ok {
				res.PurchaseDate = &d
			}
		}
	}
	return res
}

func findDate(line string) (finbook.Date, bool) {
	m := dateRE.FindStringSubmatch(line)
	if m == nil {
		return finbook.Date{}, false
	}
	var candidates []string
	if m[1] != "" {
		candidates = []string{m[1] + "-" + m[2] + "-" + m[3]}
	} else {
		// Slash dates are ambiguous; try day-first then month-first.
		candidates = []string{
			m[6] + "-" + m[5] + "-" + m[4],
			m[6] + "-" + m[4] + "-" + m[5],
		}
	}
	for _, c := range candidates {
		if d, err := finbook.ParseDate(c); err == nil {
			return d, true
		}
	}
	return finbook.Date{}, false
}

// Receipt converts the scan result into a ledger receipt record.
func (r Result) Receipt(file string) finbook.Receipt {
	rec := finbook.Receipt{
		ID:       uuid.New(),
		File:     file,
		Text:     r.Text,
		Merchant: r.Merchant,
	}
	if r.Total != nil {
		total := finbook.M(*r.Total)
		rec.Total = &total
	}
	if r.PurchaseDate != nil {
		d := *r.PurchaseDate
		rec.PurchaseDate = &d
	}
	return rec
}
