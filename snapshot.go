package finbook

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Snapshot is the complete state of all seven ledger collections at one
// instant. It is the sole unit of persistence, and the input of every
// aggregation function. Records are treated as immutable: holders of a
// snapshot never mutate them in place.
type Snapshot struct {
	Transactions []Transaction     `json:"transactions"`
	Budgets      []Budget          `json:"budgets"`
	Accounts     []Account         `json:"accounts"`
	Assets       []Asset           `json:"assets"`
	Debts        []Debt            `json:"debts"`
	SavingsGoals []SavingsGoal     `json:"savingsGoals"`
	Reminders    []PaymentReminder `json:"reminders"`
}

// Clone returns a snapshot whose collections are independent of the receiver.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Transactions: slices.Clone(s.Transactions),
		Budgets:      slices.Clone(s.Budgets),
		Accounts:     slices.Clone(s.Accounts),
		Assets:       slices.Clone(s.Assets),
		Debts:        slices.Clone(s.Debts),
		SavingsGoals: slices.Clone(s.SavingsGoals),
		Reminders:    slices.Clone(s.Reminders),
	}
}

// Debt returns the debt with the given id, or nil. This is how soft links
// (PaymentReminder.DebtID) resolve: a dangling id yields nil, never a failure.
func (s *Snapshot) Debt(id uuid.UUID) *Debt {
	for i := range s.Debts {
		if s.Debts[i].ID == id {
			return &s.Debts[i]
		}
	}
	return nil
}

// Validate checks the snapshot invariants: unique ids per collection,
// non-negative monetary magnitudes, and a single currency across all
// monetary fields. Mixing currencies would make every aggregation sum
// meaningless, so a mixed file is rejected here rather than discovered
// mid-sum.
func (s *Snapshot) Validate() error {
	seen := make(map[uuid.UUID]bool)
	unique := func(kind string, id uuid.UUID) error {
		if seen[id] {
			return fmt.Errorf("duplicate %s id %s", kind, id)
		}
		seen[id] = true
		return nil
	}

	cur := ""
	sameCurrency := func(kind string, id uuid.UUID, amounts ...Money) error {
		for _, m := range amounts {
			if m.cur == "" {
				continue
			}
			if cur == "" {
				cur = m.cur
			}
			if m.cur != cur {
				return fmt.Errorf("%s %s: currency %s differs from ledger currency %s", kind, id, m.cur, cur)
			}
		}
		return nil
	}

	for _, t := range s.Transactions {
		if err := unique("transaction", t.ID); err != nil {
			return err
		}
		if t.Amount.IsNegative() {
			return fmt.Errorf("transaction %s: negative amount", t.ID)
		}
		if err := sameCurrency("transaction", t.ID, t.Amount); err != nil {
			return err
		}
	}
	clear(seen)
	for _, b := range s.Budgets {
		if err := unique("budget", b.ID); err != nil {
			return err
		}
		if b.Limit.IsNegative() {
			return fmt.Errorf("budget %s: negative limit", b.ID)
		}
		if err := sameCurrency("budget", b.ID, b.Limit); err != nil {
			return err
		}
	}
	clear(seen)
	for _, a := range s.Accounts {
		if err := unique("account", a.ID); err != nil {
			return err
		}
		if err := sameCurrency("account", a.ID, a.Balance); err != nil {
			return err
		}
	}
	clear(seen)
	for _, a := range s.Assets {
		if err := unique("asset", a.ID); err != nil {
			return err
		}
		if err := sameCurrency("asset", a.ID, a.Value); err != nil {
			return err
		}
	}
	clear(seen)
	for _, d := range s.Debts {
		if err := unique("debt", d.ID); err != nil {
			return err
		}
		if err := sameCurrency("debt", d.ID, d.Outstanding, d.MinimumPayment); err != nil {
			return err
		}
	}
	clear(seen)
	for _, g := range s.SavingsGoals {
		if err := unique("savings goal", g.ID); err != nil {
			return err
		}
		if err := sameCurrency("savings goal", g.ID, g.Target, g.Current); err != nil {
			return err
		}
	}
	clear(seen)
	for _, r := range s.Reminders {
		if err := unique("reminder", r.ID); err != nil {
			return err
		}
		if err := sameCurrency("reminder", r.ID, r.Amount); err != nil {
			return err
		}
	}
	return nil
}
