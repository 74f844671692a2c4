package finbook

import (
	"github.com/google/uuid"
)

// Coordinate is a geographic point attached to a transaction.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Receipt is the stored result of scanning a purchase receipt.
// Extraction fields are optional: a scan may produce text and nothing else.
type Receipt struct {
	ID           uuid.UUID `json:"id"`
	File         string    `json:"file,omitempty"`
	Text         string    `json:"text,omitempty"`
	Total        *Money    `json:"total,omitempty"`
	Merchant     string    `json:"merchant,omitempty"`
	PurchaseDate *Date     `json:"purchaseDate,omitempty"`
}

// Transaction is a single dated monetary movement.
// Amount is a non-negative magnitude; the direction is carried by Income.
type Transaction struct {
	ID       uuid.UUID   `json:"id"`
	Date     Date        `json:"date"`
	Amount   Money       `json:"amount"`
	Category Category    `json:"category"`
	Merchant string      `json:"merchant,omitempty"`
	Notes    string      `json:"notes,omitempty"`
	Receipt  *Receipt    `json:"receipt,omitempty"`
	Location *Coordinate `json:"location,omitempty"`
	Income   bool        `json:"income,omitempty"`
}

func (t Transaction) entityID() uuid.UUID { return t.ID }

// SignedAmount returns the amount negated for expenses.
func (t Transaction) SignedAmount() Money {
	if t.Income {
		return t.Amount
	}
	return t.Amount.Neg()
}
