package extract

import (
	"testing"
)

func TestScanItems_SkipsSummaryRows(t *testing.T) {
	lines := []string{
		"Milk 2% Gallon $3.48",
		"Bread Wheat $2.12",
		"SUBTOTAL $5.60",
		"TAX $0.45",
		"TOTAL $6.05",
		"YOU SAVED $1.20",
		"ITEM PRICE $0.00",
	}
	items := scanItems(lines)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Name != "Milk 2% Gallon" || !items[0].Price.Equal(mustDec(t, "3.48")) {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "Bread Wheat" || !items[1].Price.Equal(mustDec(t, "2.12")) {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestScanItems_RequiresSingleDollarSplit(t *testing.T) {
	lines := []string{
		"Candy $1.00 was $2.00", // two symbols, ambiguous
		"$3.50",                 // no name part
		"ab $1",                 // too short
	}
	if items := scanItems(lines); len(items) != 0 {
		t.Errorf("expected no items, got %v", items)
	}
}

func TestNarrativeItems_CleansCapturedNames(t *testing.T) {
	text := "The shopper picked up a loaf of bread for $3.50 and grabbed a bottle of milk for $2.99."
	items := narrativeItems(text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Name != "bread" || !items[0].Price.Equal(mustDec(t, "3.50")) {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "milk" || !items[1].Price.Equal(mustDec(t, "2.99")) {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestNarrativeItems_DropsNoiseCaptures(t *testing.T) {
	text := "She headed to checkout for $10.50 and the total came to $10.50."
	if items := narrativeItems(text); len(items) != 0 {
		t.Errorf("expected no items from noise phrases, got %v", items)
	}
}

func TestDedupeItems_FirstOccurrenceWins(t *testing.T) {
	items := []LineItem{
		{Name: "wheat bread", Price: mustDec(t, "3.50")},
		{Name: "bread loaf", Price: mustDec(t, "3.50")},  // same word, same price
		{Name: "bread sticks", Price: mustDec(t, "4.50")}, // same word, different price
		{Name: "oat milk", Price: mustDec(t, "3.50")},     // same price, no shared word
	}
	out := dedupeItems(items)
	if len(out) != 3 {
		t.Fatalf("expected 3 items after dedupe, got %d: %v", len(out), out)
	}
	if out[0].Name != "wheat bread" {
		t.Errorf("first occurrence should win, got %q", out[0].Name)
	}
}

func TestCleanItemName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a loaf of bread", "bread"},
		{"an apple", "apple"},
		{"cheese priced at", "cheese"},
		{"bottle of milk for", "milk"},
	}
	for _, tc := range cases {
		if got := cleanItemName(tc.in); got != tc.want {
			t.Errorf("cleanItemName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
