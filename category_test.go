package finbook

import (
	"encoding/json"
	"testing"
)

func TestCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	if got := FoodAndDining.String(); got != "Food & Dining" {
		t.Errorf("FoodAndDining = %q", got)
	}
	if got := Other.String(); got != "Other" {
		t.Errorf("Other = %q", got)
	}
	if n := len(Categories()); n != 12 {
		t.Errorf("got %d categories, want 12", n)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	if _, err := ParseCategory("Groceries"); err == nil {
		t.Error("ParseCategory should reject unknown names")
	}
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(FoodAndDining)
	if err != nil {
		t.Fatal(err)
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil || name != "Food & Dining" {
		t.Errorf("Marshal = %s", b)
	}
	var c Category
	if err := json.Unmarshal([]byte(`"Subscription"`), &c); err != nil || c != Subscription {
		t.Errorf("Unmarshal = %v, %v", c, err)
	}
	if err := json.Unmarshal([]byte(`"Misc"`), &c); err == nil {
		t.Error("Unmarshal should reject unknown categories")
	}
}
