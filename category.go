package finbook

import (
	"encoding/json"
	"fmt"
)

// Category is the closed set of transaction categories.
// Presentation attributes (colors, icons) belong to display layers, not here.
type Category int

const (
	FoodAndDining Category = iota
	Transportation
	Shopping
	Entertainment
	Utilities
	Healthcare
	Education
	Savings
	Income
	Investment
	Subscription
	Other
)

// categoryNames holds the wire values, in declaration order.
var categoryNames = [...]string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Education",
	"Savings",
	"Income",
	"Investment",
	"Subscription",
	"Other",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		panic(fmt.Sprintf("unknown category %d", c))
	}
	return categoryNames[c]
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// ParseCategory parses a category from its wire value.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return Other, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
