package finbook

import (
	"github.com/google/uuid"
)

// SampleSnapshot builds the fixed starter dataset installed when no
// persisted snapshot exists: 4 transactions (one income, three expense
// categories), 3 budgets, 2 accounts, 2 assets, 2 debts, 2 savings goals
// and 2 payment reminders. Dates are anchored on today so the reports have
// something to show on first run.
func SampleSnapshot() *Snapshot {
	today := Today()

	mortgage := Debt{
		ID:             uuid.New(),
		Name:           "Home Mortgage",
		Outstanding:    M(184000),
		InterestRate:   3.25,
		MinimumPayment: M(1200),
		DueDate:        today.Add(15),
		Type:           DebtMortgage,
	}
	visa := Debt{
		ID:             uuid.New(),
		Name:           "City Bank Visa",
		Outstanding:    M(824),
		InterestRate:   19.99,
		MinimumPayment: M(50),
		DueDate:        today.Add(8),
		Type:           DebtCreditCard,
	}

	vacationDue := today.AddPeriod(Monthly, 9)

	return &Snapshot{
		Transactions: []Transaction{
			{ID: uuid.New(), Date: today, Amount: M(82.45), Category: FoodAndDining,
				Merchant: "Whole Foods", Notes: "Weekly groceries"},
			{ID: uuid.New(), Date: today, Amount: M(3400), Category: Income,
				Merchant: "ACME Corp", Notes: "Monthly salary", Income: true},
			{ID: uuid.New(), Date: today, Amount: M(42.10), Category: Transportation,
				Merchant: "Lyft"},
			{ID: uuid.New(), Date: today, Amount: M(12.99), Category: Subscription,
				Merchant: "Spotify"},
		},
		Budgets: []Budget{
			{ID: uuid.New(), Category: FoodAndDining, Limit: M(500), Period: Monthly,
				StartDate: today, Notify: true},
			{ID: uuid.New(), Category: Transportation, Limit: M(200), Period: Monthly,
				StartDate: today, Notify: true},
			{ID: uuid.New(), Category: Entertainment, Limit: M(150), Period: Monthly,
				StartDate: today, Notify: true},
		},
		Accounts: []Account{
			{ID: uuid.New(), Name: "Everyday Checking", Balance: M(2400),
				Type: AccountChecking, Institution: "ToTo Bank", LastUpdated: today},
			{ID: uuid.New(), Name: "High-Yield Savings", Balance: M(9200),
				Type: AccountSavings, Institution: "ToTo Bank", LastUpdated: today},
		},
		Assets: []Asset{
			{ID: uuid.New(), Name: "Emergency Fund", Value: M(5000), Type: AssetCash},
			{ID: uuid.New(), Name: "Index Fund", Value: M(12000), Type: AssetInvestment},
		},
		Debts: []Debt{visa, mortgage},
		SavingsGoals: []SavingsGoal{
			{ID: uuid.New(), Title: "Hawaii Vacation", Target: M(5000), Current: M(1800),
				DueDate: &vacationDue, ColorHex: "00A8E8"},
			{ID: uuid.New(), Title: "Emergency Fund", Target: M(10000), Current: M(6500),
				Automated: true},
		},
		Reminders: []PaymentReminder{
			{ID: uuid.New(), Title: "Mortgage Payment", DueDate: today.Add(5),
				Amount: M(1200), Recurring: true, DebtID: &mortgage.ID},
			{ID: uuid.New(), Title: "City Bank Visa", DueDate: today.Add(3),
				Amount: M(50), Recurring: true, DebtID: &visa.ID},
		},
	}
}
