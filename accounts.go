package finbook

import (
	"github.com/google/uuid"
)

// AccountType classifies a bank or brokerage account.
type AccountType string

const (
	AccountCash       AccountType = "cash"
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountRetirement AccountType = "retirement"
	AccountCreditCard AccountType = "creditCard"
	AccountLoan       AccountType = "loan"
)

// Account is a balance held at an institution. Accounts are informational:
// net worth is computed from assets and debts, not account balances.
type Account struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Balance     Money       `json:"balance"`
	Type        AccountType `json:"type"`
	Institution string      `json:"institution,omitempty"`
	LastUpdated Date        `json:"lastUpdated"`
}

func (a Account) entityID() uuid.UUID { return a.ID }

// AssetType classifies an asset for net-worth reporting.
type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetDeposit    AssetType = "deposit"
	AssetInvestment AssetType = "investment"
	AssetRealEstate AssetType = "realEstate"
	AssetVehicle    AssetType = "vehicle"
	AssetRetirement AssetType = "retirement"
	AssetOther      AssetType = "other"
)

// Asset is a valued possession counted positively in net worth.
type Asset struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value Money     `json:"value"`
	Type  AssetType `json:"type"`
	Notes string    `json:"notes,omitempty"`
}

func (a Asset) entityID() uuid.UUID { return a.ID }

// DebtType classifies a liability.
type DebtType string

const (
	DebtCreditCard   DebtType = "creditCard"
	DebtMortgage     DebtType = "mortgage"
	DebtStudentLoan  DebtType = "studentLoan"
	DebtPersonalLoan DebtType = "personalLoan"
	DebtAutoLoan     DebtType = "autoLoan"
	DebtOther        DebtType = "other"
)

// Debt is a liability counted negatively in net worth.
type Debt struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Outstanding    Money     `json:"outstanding"`
	InterestRate   float64   `json:"interestRate,omitempty"`
	MinimumPayment Money     `json:"minimumPayment"`
	DueDate        Date      `json:"dueDate"`
	Type           DebtType  `json:"type"`
}

func (d Debt) entityID() uuid.UUID { return d.ID }

// SavingsGoal tracks progress towards a target amount.
type SavingsGoal struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Target    Money     `json:"target"`
	Current   Money     `json:"current"`
	DueDate   *Date     `json:"dueDate,omitempty"`
	ColorHex  string    `json:"colorHex,omitempty"`
	Automated bool      `json:"automated,omitempty"`
}

func (g SavingsGoal) entityID() uuid.UUID { return g.ID }

// Progress returns current/target clamped to [0, 1], and 0 when the target
// is not strictly positive.
func (g SavingsGoal) Progress() float64 {
	p := g.Current.Ratio(g.Target)
	return min(max(p, 0), 1)
}

// PaymentReminder is a dated payment to be notified about. DebtID is a soft
// link: it may reference a debt that has since been deleted, resolution is a
// lookup that may return nil.
type PaymentReminder struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	DueDate   Date       `json:"dueDate"`
	Amount    Money      `json:"amount"`
	Recurring bool       `json:"recurring,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	DebtID    *uuid.UUID `json:"debtId,omitempty"`
}

func (r PaymentReminder) entityID() uuid.UUID { return r.ID }
