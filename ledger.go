package finbook

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// entity is any ledger record addressable by id.
type entity interface {
	entityID() uuid.UUID
}

// Ledger owns the mutable collections and is their single source of truth.
// All mutations and snapshot reads serialize through its lock; aggregation
// always runs on a Snapshot copy, never on live collections.
type Ledger struct {
	mu sync.RWMutex
	s  Snapshot

	flushMu sync.Mutex // serializes persistence, last writer wins
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// NewLedgerOf creates a ledger owning a copy of the given snapshot.
func NewLedgerOf(s *Snapshot) *Ledger {
	l := &Ledger{}
	l.s = *s.Clone()
	return l
}

// replaceByID replaces the element with x's id. Unknown ids are a no-op by
// contract, not an error: updating a record that was deleted concurrently
// must be harmless.
func replaceByID[T entity](list []T, x T) {
	for i := range list {
		if list[i].entityID() == x.entityID() {
			list[i] = x
			return
		}
	}
}

// removeByID drops every element whose id is in ids.
func removeByID[T entity](list []T, ids ...uuid.UUID) []T {
	return slices.DeleteFunc(list, func(x T) bool {
		return slices.Contains(ids, x.entityID())
	})
}

// Snapshot returns a consistent copy of all seven collections.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s.Clone()
}

// Replace installs a copy of the given snapshot as the ledger's new state.
func (l *Ledger) Replace(s *Snapshot) {
	c := s.Clone()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s = *c
}

// Transactions returns a copy of all transactions, newest first.
func (l *Ledger) Transactions() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Transactions)
}

func (l *Ledger) Budgets() []Budget {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Budgets)
}

func (l *Ledger) Accounts() []Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Accounts)
}

func (l *Ledger) Assets() []Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Assets)
}

func (l *Ledger) Debts() []Debt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Debts)
}

func (l *Ledger) SavingsGoals() []SavingsGoal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.SavingsGoals)
}

func (l *Ledger) Reminders() []PaymentReminder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.s.Reminders)
}

// Debt resolves a debt id, typically a reminder's soft link. Returns the
// zero value and false when the id dangles.
func (l *Ledger) Debt(id uuid.UUID) (Debt, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if d := l.s.Debt(id); d != nil {
		return *d, true
	}
	return Debt{}, false
}

// AddTransaction stores a new transaction, newest first. A zero id and a
// zero date get defaults. Returns the stored record.
func (l *Ledger) AddTransaction(t Transaction) Transaction {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Transactions = slices.Insert(l.s.Transactions, 0, t)
	return t
}

func (l *Ledger) UpdateTransaction(t Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Transactions, t)
}

func (l *Ledger) DeleteTransactions(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Transactions = removeByID(l.s.Transactions, ids...)
}

func (l *Ledger) AddBudget(b Budget) Budget {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.StartDate.IsZero() {
		b.StartDate = Today()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Budgets = append(l.s.Budgets, b)
	return b
}

func (l *Ledger) UpdateBudget(b Budget) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Budgets, b)
}

func (l *Ledger) DeleteBudgets(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Budgets = removeByID(l.s.Budgets, ids...)
}

func (l *Ledger) AddAccount(a Account) Account {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.LastUpdated.IsZero() {
		a.LastUpdated = Today()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Accounts = append(l.s.Accounts, a)
	return a
}

func (l *Ledger) UpdateAccount(a Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Accounts, a)
}

func (l *Ledger) DeleteAccounts(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Accounts = removeByID(l.s.Accounts, ids...)
}

func (l *Ledger) AddAsset(a Asset) Asset {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Assets = append(l.s.Assets, a)
	return a
}

func (l *Ledger) UpdateAsset(a Asset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Assets, a)
}

func (l *Ledger) DeleteAssets(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Assets = removeByID(l.s.Assets, ids...)
}

func (l *Ledger) AddDebt(d Debt) Debt {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Debts = append(l.s.Debts, d)
	return d
}

func (l *Ledger) UpdateDebt(d Debt) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Debts, d)
}

// DeleteDebts removes debts without cascading: reminders linked to a removed
// debt keep their DebtID and dangle.
func (l *Ledger) DeleteDebts(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Debts = removeByID(l.s.Debts, ids...)
}

func (l *Ledger) AddSavingsGoal(g SavingsGoal) SavingsGoal {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.SavingsGoals = append(l.s.SavingsGoals, g)
	return g
}

func (l *Ledger) UpdateSavingsGoal(g SavingsGoal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.SavingsGoals, g)
}

func (l *Ledger) DeleteSavingsGoals(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.SavingsGoals = removeByID(l.s.SavingsGoals, ids...)
}

func (l *Ledger) AddReminder(r PaymentReminder) PaymentReminder {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.DueDate.IsZero() {
		r.DueDate = Today()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Reminders = append(l.s.Reminders, r)
	return r
}

func (l *Ledger) UpdateReminder(r PaymentReminder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	replaceByID(l.s.Reminders, r)
}

func (l *Ledger) DeleteReminders(ids ...uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Reminders = removeByID(l.s.Reminders, ids...)
}
