package finbook

import (
	"github.com/google/uuid"
)

// BudgetProgress is the consumption of one budget within its active window.
type BudgetProgress struct {
	Budget    Budget
	Spent     Money
	Remaining Money   // max(limit - spent, 0)
	Ratio     float64 // spent / limit, unclamped: > 1 signals overage
}

// Progress computes how much of the budget's limit was consumed inside its
// period window. The ratio is 0 for a non-positive limit and is never
// clamped; display layers clamp for rendering only.
func Progress(s *Snapshot, b Budget) BudgetProgress {
	window := b.Window()
	spent := M(0)
	for _, t := range s.Transactions {
		if !t.Income && t.Category == b.Category && window.Contains(t.Date) {
			spent = spent.Add(t.Amount)
		}
	}

	remaining := b.Limit.Sub(spent)
	if remaining.IsNegative() {
		remaining = M(0)
	}
	return BudgetProgress{
		Budget:    b,
		Spent:     spent,
		Remaining: remaining,
		Ratio:     spent.Ratio(b.Limit),
	}
}

// AllProgress computes the progress of every budget, in collection order.
func AllProgress(s *Snapshot) []BudgetProgress {
	out := make([]BudgetProgress, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		out = append(out, Progress(s, b))
	}
	return out
}

// DefaultAlertThreshold is the consumption ratio at which a budget is
// considered "approaching" its limit.
const DefaultAlertThreshold = 0.9

// BudgetAlert reports a budget whose consumption reached the alert threshold.
type BudgetAlert struct {
	BudgetID uuid.UUID
	Category Category
	Spent    Money
	Ratio    float64
}

// ApproachingBudgets returns an alert for every budget whose consumption
// ratio reached the threshold. The per-budget notification toggle is NOT
// consulted here: that decision belongs to the notifier, not the report.
func ApproachingBudgets(s *Snapshot, threshold float64) []BudgetAlert {
	var out []BudgetAlert
	for _, b := range s.Budgets {
		p := Progress(s, b)
		if p.Ratio < threshold {
			continue
		}
		out = append(out, BudgetAlert{
			BudgetID: b.ID,
			Category: b.Category,
			Spent:    p.Spent,
			Ratio:    p.Ratio,
		})
	}
	return out
}
