package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/finbook/finbook"
	"github.com/yuin/goldmark"
)

// renderChecks validates a report: it must not carry a template error, it
// must parse as markdown, and it must mention every expected fragment.
func renderChecks(t *testing.T, md string, fragments ...string) {
	t.Helper()
	if strings.Contains(md, "error") && strings.Contains(md, "template") {
		t.Fatalf("template error in report:\n%s", md)
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		t.Fatalf("report is not valid markdown: %v\n%s", err, md)
	}
	for _, f := range fragments {
		if !strings.Contains(md, f) {
			t.Errorf("report misses %q:\n%s", f, md)
		}
	}
}

func TestTransactions(t *testing.T) {
	s := finbook.SampleSnapshot()
	renderChecks(t, Transactions(s.Transactions), "Whole Foods", "Food & Dining", "ACME Corp")
}

func TestTransactionsEmpty(t *testing.T) {
	renderChecks(t, Transactions(nil), "No transactions recorded.")
}

func TestBudgets(t *testing.T) {
	s := finbook.SampleSnapshot()
	renderChecks(t, Budgets(finbook.AllProgress(s)), "Food & Dining", "Transportation", "%")
}

func TestTrend(t *testing.T) {
	s := finbook.SampleSnapshot()
	points := finbook.TrendAnalysis(s, finbook.Monthly, 6, finbook.Today())
	renderChecks(t, Trend(points), "Income", "Expenses", "Net")
}

func TestDistribution(t *testing.T) {
	s := finbook.SampleSnapshot()
	r := finbook.Monthly.Range(finbook.Today())
	renderChecks(t, Distribution(r, finbook.SpendingDistribution(s, r)), "Food & Dining", r.Identifier())
}

func TestForecast(t *testing.T) {
	s := finbook.SampleSnapshot()
	points := finbook.ForecastSpending(s, 6, finbook.Today())
	renderChecks(t, Forecast(points), "Projected")
}

func TestForecastEmpty(t *testing.T) {
	renderChecks(t, Forecast(nil), "No spending history to project from.")
}

func TestNetWorth(t *testing.T) {
	s := finbook.SampleSnapshot()
	now := finbook.Today()
	current := finbook.NetWorthAt(s, now)
	history := finbook.NetWorthHistory(s, 12, now)
	renderChecks(t, NetWorth(current, history), "Net worth", "assets", "debts")
}

func TestGoals(t *testing.T) {
	s := finbook.SampleSnapshot()
	renderChecks(t, Goals(s.SavingsGoals), "Hawaii Vacation", "Emergency Fund")
}

func TestReminders(t *testing.T) {
	s := finbook.SampleSnapshot()
	renderChecks(t, Reminders(s.Reminders), "Mortgage Payment", "City Bank Visa")
}

func TestRemindersEmpty(t *testing.T) {
	renderChecks(t, Reminders(nil), "Nothing due.")
}
