package scan

import (
	"context"
	"testing"

	"github.com/finbook/finbook"
)

const receiptText = `WHOLE FOODS MARKET
123 Main Street

Bananas        1.29
Oat milk       4.50

TOTAL         82.45
2024-02-14 18:32
Thank you for shopping`

func TestParseText(t *testing.T) {
	res := ParseText(receiptText)
	if res.Merchant != "WHOLE FOODS MARKET" {
		t.Errorf("Merchant = %q", res.Merchant)
	}
	if res.Total == nil || res.Total.String() != "82.45" {
		t.Errorf("Total = %v, want the TOTAL line amount", res.Total)
	}
	if res.PurchaseDate == nil || *res.PurchaseDate != finbook.MustParseDate("2024-02-14") {
		t.Errorf("PurchaseDate = %v", res.PurchaseDate)
	}
	if res.Text != receiptText {
		t.Error("raw text must be preserved")
	}
}

func TestParseTextSlashDates(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"31/01/2024", "2024-01-31"}, // day first
		{"01/31/2024", "2024-01-31"}, // month first disambiguates
		{"05/04/2024", "2024-04-05"}, // ambiguous, day first wins
	}
	for _, tt := range tests {
		res := ParseText(tt.line)
		if res.PurchaseDate == nil || *res.PurchaseDate != finbook.MustParseDate(tt.want) {
			t.Errorf("ParseText(%q).PurchaseDate = %v, want %s", tt.line, res.PurchaseDate, tt.want)
		}
	}
}

func TestParseTextEmpty(t *testing.T) {
	res := ParseText("")
	if res.Merchant != "" || res.Total != nil || res.PurchaseDate != nil {
		t.Errorf("empty text should extract nothing: %+v", res)
	}
}

func TestTextScanner(t *testing.T) {
	res, err := TextScanner{}.Scan(context.Background(), []byte(receiptText))
	if err != nil {
		t.Fatal(err)
	}
	if res.Merchant == "" {
		t.Error("TextScanner should funnel through ParseText")
	}
}

func TestResultReceipt(t *testing.T) {
	res := ParseText(receiptText)
	rec := res.Receipt("receipt.jpg")
	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Receipt should carry an id")
	}
	if rec.File != "receipt.jpg" || rec.Merchant != res.Merchant {
		t.Errorf("Receipt = %+v", rec)
	}
	if rec.Total == nil || !rec.Total.Equal(finbook.M(*res.Total)) {
		t.Errorf("Receipt total = %v", rec.Total)
	}
}

func TestParseReply(t *testing.T) {
	res, err := parseReply("```json\n" +
		`{"text": "WHOLE FOODS\nTOTAL 82.45", "merchant": "Whole Foods", "total": "82.45", "date": "2024-02-14"}` +
		"\n```")
	if err != nil {
		t.Fatal(err)
	}
	if res.Merchant != "Whole Foods" {
		t.Errorf("Merchant = %q", res.Merchant)
	}
	if res.Total == nil || res.Total.String() != "82.45" {
		t.Errorf("Total = %v", res.Total)
	}
	if res.PurchaseDate == nil || *res.PurchaseDate != finbook.MustParseDate("2024-02-14") {
		t.Errorf("PurchaseDate = %v", res.PurchaseDate)
	}
}

func TestParseReplyNullsFallBackToText(t *testing.T) {
	res, err := parseReply(`{"text": "CORNER DELI\nTOTAL 12.50\n2024-03-01", "merchant": null, "total": null, "date": null}`)
	if err != nil {
		t.Fatal(err)
	}
	if res.Merchant != "CORNER DELI" {
		t.Errorf("Merchant = %q", res.Merchant)
	}
	if res.Total == nil || res.Total.String() != "12.5" {
		t.Errorf("Total = %v", res.Total)
	}
	if res.PurchaseDate == nil || *res.PurchaseDate != finbook.MustParseDate("2024-03-01") {
		t.Errorf("PurchaseDate = %v", res.PurchaseDate)
	}
}

func TestParseReplyNumericTotal(t *testing.T) {
	res, err := parseReply(`{"text": "x", "merchant": "Deli", "total": 12.5, "date": "2024-03-01"}`)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total == nil || res.Total.String() != "12.5" {
		t.Errorf("Total = %v", res.Total)
	}
}

func TestParseReplyNotJSON(t *testing.T) {
	if _, err := parseReply("sorry, I cannot read this receipt"); err == nil {
		t.Error("non-JSON reply should error")
	}
}

func TestSniffMIME(t *testing.T) {
	if got := sniffMIME([]byte{0xFF, 0xD8, 0xFF, 0xE0}); got != "image/jpeg" {
		t.Errorf("jpeg = %q", got)
	}
	if got := sniffMIME([]byte("\x89PNG\r\n\x1a\n")); got != "image/png" {
		t.Errorf("png = %q", got)
	}
	if got := sniffMIME([]byte("plain text")); got != "application/octet-stream" {
		t.Errorf("fallback = %q", got)
	}
}
