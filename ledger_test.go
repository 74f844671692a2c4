package finbook

import (
	"testing"

	"github.com/google/uuid"
)

func TestAddTransactionDefaults(t *testing.T) {
	l := NewLedger()
	tx := l.AddTransaction(Transaction{Amount: M(10), Category: Shopping})
	if tx.ID == uuid.Nil {
		t.Error("AddTransaction should assign an id")
	}
	if tx.Date.IsZero() {
		t.Error("AddTransaction should default the date to today")
	}
	if got := l.Transactions(); len(got) != 1 || got[0].ID != tx.ID {
		t.Errorf("stored transactions = %v", got)
	}
}

func TestAddTransactionNewestFirst(t *testing.T) {
	l := NewLedger()
	first := l.AddTransaction(Transaction{Amount: M(1)})
	second := l.AddTransaction(Transaction{Amount: M(2)})
	got := l.Transactions()
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("want newest first, got %v", got)
	}
}

func TestUpdateTransaction(t *testing.T) {
	l := NewLedger()
	tx := l.AddTransaction(Transaction{Amount: M(10), Merchant: "before"})
	tx.Merchant = "after"
	l.UpdateTransaction(tx)
	if got := l.Transactions()[0].Merchant; got != "after" {
		t.Errorf("merchant = %q", got)
	}

	// updating an unknown id must be a silent no-op
	l.UpdateTransaction(Transaction{ID: uuid.New(), Merchant: "ghost"})
	if got := l.Transactions(); len(got) != 1 || got[0].Merchant != "after" {
		t.Errorf("unknown-id update changed state: %v", got)
	}
}

func TestDeleteTransactions(t *testing.T) {
	l := NewLedger()
	a := l.AddTransaction(Transaction{Amount: M(1)})
	b := l.AddTransaction(Transaction{Amount: M(2)})
	c := l.AddTransaction(Transaction{Amount: M(3)})

	l.DeleteTransactions(a.ID, c.ID, uuid.New())
	got := l.Transactions()
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("after delete: %v", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	l := NewLedgerOf(SampleSnapshot())
	s := l.Snapshot()
	before := len(s.Transactions)

	l.AddTransaction(Transaction{Amount: M(1)})
	if len(s.Transactions) != before {
		t.Error("snapshot must not see later mutations")
	}

	s.Transactions[0].Merchant = "tampered"
	if l.Transactions()[0].Merchant == "tampered" {
		t.Error("mutating a snapshot must not reach the ledger")
	}
}

func TestBudgetDefaults(t *testing.T) {
	l := NewLedger()
	b := l.AddBudget(Budget{Category: FoodAndDining, Limit: M(500), Period: Monthly})
	if b.ID == uuid.Nil || b.StartDate.IsZero() {
		t.Errorf("AddBudget defaults missing: %+v", b)
	}
	b.Limit = M(600)
	l.UpdateBudget(b)
	if got := l.Budgets()[0].Limit; !got.Equal(M(600)) {
		t.Errorf("limit = %s", got)
	}
	l.DeleteBudgets(b.ID)
	if got := l.Budgets(); len(got) != 0 {
		t.Errorf("after delete: %v", got)
	}
}

func TestDebtLookupAndSoftLink(t *testing.T) {
	l := NewLedger()
	d := l.AddDebt(Debt{Name: "Visa", Outstanding: M(824)})
	r := l.AddReminder(PaymentReminder{Title: "Visa payment", Amount: M(50), DebtID: &d.ID})

	if got, ok := l.Debt(d.ID); !ok || got.Name != "Visa" {
		t.Errorf("Debt lookup = %v, %v", got, ok)
	}

	// deleting the debt leaves the reminder dangling, not deleted
	l.DeleteDebts(d.ID)
	if _, ok := l.Debt(d.ID); ok {
		t.Error("deleted debt still resolves")
	}
	got := l.Reminders()
	if len(got) != 1 || got[0].ID != r.ID || got[0].DebtID == nil {
		t.Errorf("reminder after debt deletion: %v", got)
	}
}

func TestAllCollectionsCRUD(t *testing.T) {
	l := NewLedger()

	a := l.AddAccount(Account{Name: "Checking", Balance: M(100), Type: AccountChecking})
	if a.LastUpdated.IsZero() {
		t.Error("AddAccount should stamp LastUpdated")
	}
	a.Balance = M(250)
	l.UpdateAccount(a)
	if got := l.Accounts()[0].Balance; !got.Equal(M(250)) {
		t.Errorf("balance = %s", got)
	}

	as := l.AddAsset(Asset{Name: "Fund", Value: M(5000), Type: AssetInvestment})
	g := l.AddSavingsGoal(SavingsGoal{Title: "Trip", Target: M(1000)})
	r := l.AddReminder(PaymentReminder{Title: "Rent", Amount: M(900)})
	if r.DueDate.IsZero() {
		t.Error("AddReminder should default the due date")
	}

	l.DeleteAccounts(a.ID)
	l.DeleteAssets(as.ID)
	l.DeleteSavingsGoals(g.ID)
	l.DeleteReminders(r.ID)
	s := l.Snapshot()
	if len(s.Accounts)+len(s.Assets)+len(s.SavingsGoals)+len(s.Reminders) != 0 {
		t.Errorf("collections not empty after deletes: %+v", s)
	}
}
