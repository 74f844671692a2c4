// Package renderer turns aggregation results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/finbook/finbook"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the formatting helpers available to every template.
var funcs = template.FuncMap{
	// pct formats a ratio as a whole percentage, e.g. 0.82 -> "82%".
	"pct": func(ratio float64) string { return fmt.Sprintf("%.0f%%", ratio*100) },
	// bar draws a ten-slot consumption gauge, clamped for display only.
	"bar": func(ratio float64) string {
		filled := int(min(max(ratio, 0), 1) * 10)
		return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	},
}

// Transactions renders the transaction log, newest first.
func Transactions(txs []finbook.Transaction) string {
	return render("transactions.md", txs)
}

// Budgets renders the per-budget consumption table.
func Budgets(progress []finbook.BudgetProgress) string {
	return render("budgets.md", progress)
}

// Trend renders the income/expense/net series.
func Trend(points []finbook.TrendPoint) string {
	return render("trend.md", points)
}

// Distribution renders the per-category spending share table for a range.
func Distribution(r finbook.Range, shares []finbook.CategorySpending) string {
	return render("distribution.md", struct {
		Range  finbook.Range
		Shares []finbook.CategorySpending
	}{r, shares})
}

// Forecast renders the projected spending table.
func Forecast(points []finbook.ForecastPoint) string {
	return render("forecast.md", points)
}

// NetWorth renders the current balance and its monthly history.
func NetWorth(current finbook.NetWorthPoint, history []finbook.NetWorthPoint) string {
	return render("networth.md", struct {
		Current finbook.NetWorthPoint
		History []finbook.NetWorthPoint
	}{current, history})
}

// Goals renders the savings goal progress list.
func Goals(goals []finbook.SavingsGoal) string {
	return render("goals.md", goals)
}

// Reminders renders upcoming payment reminders.
func Reminders(reminders []finbook.PaymentReminder) string {
	return render("reminders.md", reminders)
}

// render executes one embedded template over the data. Template errors are
// rendered into the output rather than returned: a report must always
// produce something to look at.
func render(file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
