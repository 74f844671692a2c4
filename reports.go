package finbook

import (
	"math"
)

// Aggregation functions are pure projections of a snapshot plus an
// injectable "now". They are total: missing or empty data always yields a
// defined zero or empty result, never an error, and every ratio guards its
// denominator. I/O failures cannot reach here; they stop at the store.

// TotalSpent sums expense magnitudes over transactions dated within r,
// boundaries included.
func TotalSpent(s *Snapshot, r Range) Money {
	total := M(0)
	for _, t := range s.Transactions {
		if !t.Income && r.Contains(t.Date) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalIncome sums income magnitudes over transactions dated within r.
func TotalIncome(s *Snapshot, r Range) Money {
	total := M(0)
	for _, t := range s.Transactions {
		if t.Income && r.Contains(t.Date) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TransactionsIn filters transactions by category, and by date range when r
// is non-nil. Order is preserved (newest first).
func TransactionsIn(s *Snapshot, category Category, r *Range) []Transaction {
	var out []Transaction
	for _, t := range s.Transactions {
		if t.Category != category {
			continue
		}
		if r != nil && !r.Contains(t.Date) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CategorySpending is one category's share of spending over a range.
type CategorySpending struct {
	Category Category
	Total    Money
	Share    float64 // fraction of the grand total, in (0, 1]
}

// SpendingDistribution breaks down expense totals per category over r.
// Categories with no spending are omitted; when nothing was spent at all
// the result is empty (never a division by zero). Non-empty shares sum to 1.
func SpendingDistribution(s *Snapshot, r Range) []CategorySpending {
	totals := make(map[Category]Money)
	grand := M(0)
	for _, t := range s.Transactions {
		if t.Income || !r.Contains(t.Date) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}
	if !grand.IsPositive() {
		return nil
	}

	var out []CategorySpending
	for _, c := range Categories() {
		total, ok := totals[c]
		if !ok || total.IsZero() {
			continue
		}
		out = append(out, CategorySpending{
			Category: c,
			Total:    total,
			Share:    total.Ratio(grand),
		})
	}
	return out
}

// forecastGrowth is the monthly drift applied to projected spending.
// The projection is deliberately a fixed exponential drift on the recent
// average, not a statistical regression: projected(offset) =
// average(last N monthly expense totals) * 1.015^offset.
const forecastGrowth = 1.015

// ForecastPoint is one projected month of spending.
type ForecastPoint struct {
	Date      Date // first day of the projected month
	Projected Money
}

// ForecastSpending projects expenses for the next 1..months months from the
// average of the last `months` monthly expense totals. Without any expense
// history in that window the result is empty.
func ForecastSpending(s *Snapshot, months int, now Date) []ForecastPoint {
	history := TrendAnalysis(s, Monthly, months, now)
	if len(history) == 0 {
		return nil
	}
	sum := M(0)
	for _, p := range history {
		sum = sum.Add(p.Expenses)
	}
	if sum.IsZero() {
		return nil // no spending on record, nothing to extrapolate
	}
	average := sum.DivInt(len(history))

	anchor := now.StartOf(Monthly)
	out := make([]ForecastPoint, 0, months)
	for offset := 1; offset <= months; offset++ {
		out = append(out, ForecastPoint{
			Date:      anchor.AddPeriod(Monthly, offset),
			Projected: average.MulFloat(math.Pow(forecastGrowth, float64(offset))),
		})
	}
	return out
}
