package finbook

import (
	"github.com/google/uuid"
)

// Budget caps spending for one category over a recurring calendar window.
type Budget struct {
	ID        uuid.UUID `json:"id"`
	Category  Category  `json:"category"`
	Limit     Money     `json:"limit"`
	Period    Period    `json:"period"`
	StartDate Date      `json:"startDate"`
	Notify    bool      `json:"notify"`
}

func (b Budget) entityID() uuid.UUID { return b.ID }

// Window returns the budget's active period window, anchored at its start date.
func (b Budget) Window() Range { return b.Period.Range(b.StartDate) }
