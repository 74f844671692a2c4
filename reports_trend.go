package finbook

// TrendPoint is one period's income/expense/net triple.
type TrendPoint struct {
	Period   Range
	Income   Money
	Expenses Money
	Net      Money // income - expenses
}

// TrendAnalysis computes income and expense totals over the last `count`
// period windows, ending with the window containing now. Points come back
// ascending by period start, windows abut exactly. count <= 0 yields an
// empty series.
func TrendAnalysis(s *Snapshot, p Period, count int, now Date) []TrendPoint {
	if count <= 0 {
		return nil
	}
	// Anchor to the window start before shifting: shifting a month-end day
	// through short months would normalize into the wrong window.
	anchor := now.StartOf(p)
	out := make([]TrendPoint, 0, count)
	for offset := count - 1; offset >= 0; offset-- {
		window := p.Range(anchor.AddPeriod(p, -offset))
		income := TotalIncome(s, window)
		expenses := TotalSpent(s, window)
		out = append(out, TrendPoint{
			Period:   window,
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})
	}
	return out
}
