package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finbook/finbook"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for receipt extraction.
const DefaultModel = "gemini-2.5-flash"

const extractPrompt = `Read this purchase receipt. Reply with a single JSON object:
{"text": "<full receipt text>", "merchant": "<store name>", "total": "<grand total as decimal string>", "date": "<purchase date as YYYY-MM-DD>"}
Use null for any field you cannot read. Reply with the JSON only, no markdown.`

// GeminiScanner extracts receipt fields with a Gemini vision call.
type GeminiScanner struct {
	Client *genai.Client
	Model  string // defaults to DefaultModel
}

func (g *GeminiScanner) model() string {
	if g.Model != "" {
		return g.Model
	}
	return DefaultModel
}

// Scan sends the image and the extraction prompt, then reads the model's
// JSON reply. Fields the model could not read fall back to the text
// heuristics of ParseText.
func (g *GeminiScanner) Scan(ctx context.Context, image []byte) (Result, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: sniffMIME(image), Data: image}},
			{Text: extractPrompt},
		},
	}}
	resp, err := g.Client.Models.GenerateContent(ctx, g.model(), contents, nil)
	if err != nil {
		return Result{}, fmt.Errorf("receipt extraction failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("receipt extraction returned no candidates")
	}
	reply := resp.Candidates[0].Content.Parts[0].Text
	return parseReply(reply)
}

// parseReply decodes the model's JSON object, tolerating a markdown fence
// around it. Field access goes through jsonpath so a schema drift (extra
// nesting, wrapper objects) degrades to "field missing" instead of an error.
func parseReply(reply string) (Result, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")

	var jobj any
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &jobj); err != nil {
		return Result{}, fmt.Errorf("receipt extraction reply is not JSON: %w", err)
	}

	res := Result{Text: jstring(jobj, "$.text")}
	res.Merchant = jstring(jobj, "$.merchant")

	if s := jstring(jobj, "$.total"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			res.Total = &d
		}
	}
	if s := jstring(jobj, "$.date"); s != "" {
		if d, err := finbook.ParseDate(s); err == nil {
			res.PurchaseDate = &d
		}
	}

	// Whatever the model left null, the plain-text heuristics may still find.
	if res.Text != "" && (res.Total == nil || res.Merchant == "" || res.PurchaseDate == nil) {
		parsed := ParseText(res.Text)
		if res.Merchant == "" {
			res.Merchant = parsed.Merchant
		}
		if res.Total == nil {
			res.Total = parsed.Total
		}
		if res.PurchaseDate == nil {
			res.PurchaseDate = parsed.PurchaseDate
		}
	}
	return res, nil
}

// jstring extracts a string field, accepting numbers too (the model
// sometimes replies with a bare number for the total).
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	switch v := jval.(type) {
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}

func sniffMIME(image []byte) string {
	switch {
	case len(image) > 3 && image[0] == 0xFF && image[1] == 0xD8:
		return "image/jpeg"
	case len(image) > 8 && string(image[1:4]) == "PNG":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
