package extract

import (
	"testing"
)

func TestNarrative_ShoppingStory(t *testing.T) {
	text := "A shopper visited Walmart Supercenter on 2024-03-15. She picked up a loaf of bread for $3.50 " +
		"and headed to checkout. The total came to $3.50, paid in cash."

	rec, ok := narrativeStrategy{}.TryParse(text)
	if !ok {
		t.Fatal("narrative strategy should activate on a shopping story")
	}
	if rec.Method != MethodNarrative {
		t.Errorf("method = %q, want %q", rec.Method, MethodNarrative)
	}
	if rec.StoreName != "Walmart Supercenter" {
		t.Errorf("store = %q, want Walmart Supercenter", rec.StoreName)
	}
	if rec.Date != "2024-03-15" {
		t.Errorf("date = %q, want 2024-03-15", rec.Date)
	}
	if len(rec.Items) != 1 || rec.Items[0].Name != "bread" || !rec.Items[0].Price.Equal(mustDec(t, "3.50")) {
		t.Errorf("items = %v, want one bread at 3.50", rec.Items)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "3.50")) {
		t.Errorf("total = %v, want 3.50", rec.Total)
	}
	if rec.PaymentMethod != "cash" {
		t.Errorf("payment = %q, want cash", rec.PaymentMethod)
	}
}

func TestNarrative_LeavesTimeUnset(t *testing.T) {
	text := "A shopper visited Walmart at 14:30 and picked up a loaf of bread for $3.50. " +
		"The total came to $3.50."
	rec, ok := narrativeStrategy{}.TryParse(text)
	if !ok {
		t.Fatal("expected narrative activation")
	}
	if rec.Time != "" {
		t.Errorf("time = %q, narrative records carry no purchase time", rec.Time)
	}
}

func TestNarrative_SubtotalReconciliation(t *testing.T) {
	// Item sum 6.49 vs stated total 6.80: within one currency unit, so
	// the sum is trusted as the subtotal.
	text := "The shopper grabbed a bottle of juice for $2.99 and picked up a box of pasta for $3.50. " +
		"The total came to $6.80."
	rec, ok := narrativeStrategy{}.TryParse(text)
	if !ok {
		t.Fatal("expected narrative activation")
	}
	if rec.Subtotal == nil || !rec.Subtotal.Equal(mustDec(t, "6.49")) {
		t.Errorf("subtotal = %v, want 6.49", rec.Subtotal)
	}
}

func TestNarrative_NoReconciliationWhenFarOff(t *testing.T) {
	text := "The shopper grabbed a bottle of juice for $2.99. The total came to $50.00."
	rec, ok := narrativeStrategy{}.TryParse(text)
	if !ok {
		t.Fatal("expected narrative activation")
	}
	if rec.Subtotal != nil {
		t.Errorf("subtotal should stay unset when item sum is far from total, got %v", rec.Subtotal)
	}
}

func TestNarrative_DeclinesRegisterTape(t *testing.T) {
	text := "WALMART\nMilk $3.48\nSUBTOTAL $3.48\nTOTAL $3.48"
	if _, ok := (narrativeStrategy{}).TryParse(text); ok {
		t.Error("narrative strategy should decline register-tape text")
	}
}

func TestNarrative_DeclinesIndicatorWithoutFields(t *testing.T) {
	// An indicator word alone is not enough; with no store, date,
	// items or total the strategy must pass.
	text := "the cashier was friendly"
	if rec, ok := (narrativeStrategy{}).TryParse(text); ok {
		t.Errorf("expected decline, got %+v", rec)
	}
}
