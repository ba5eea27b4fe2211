package extract

import (
	"testing"
)

const sectionedDoc = `Date
2024-03-15
Time
14:30
Payment Method
Cash
Items
Milk
$3.48
Bread
$2.12
Subtotal
$5.60
Tax
$0.45
Total
$6.05
`

func TestSectioned_ParsesHeaderedDocument(t *testing.T) {
	rec, ok := sectionedStrategy{}.TryParse(sectionedDoc)
	if !ok {
		t.Fatal("sectioned strategy should activate on headered text")
	}
	if rec.Method != MethodSectioned {
		t.Errorf("method = %q, want %q", rec.Method, MethodSectioned)
	}
	if rec.Date != "2024-03-15" {
		t.Errorf("date = %q", rec.Date)
	}
	if rec.Time != "14:30" {
		t.Errorf("time = %q", rec.Time)
	}
	if rec.PaymentMethod != "Cash" {
		t.Errorf("payment = %q", rec.PaymentMethod)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("items = %v, want 2", rec.Items)
	}
	if rec.Items[0].Name != "Milk" || !rec.Items[0].Price.Equal(mustDec(t, "3.48")) {
		t.Errorf("first item = %+v", rec.Items[0])
	}
	if rec.Subtotal == nil || !rec.Subtotal.Equal(mustDec(t, "5.60")) {
		t.Errorf("subtotal = %v", rec.Subtotal)
	}
	if rec.Tax == nil || !rec.Tax.Equal(mustDec(t, "0.45")) {
		t.Errorf("tax = %v", rec.Tax)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "6.05")) {
		t.Errorf("total = %v", rec.Total)
	}
}

func TestSectioned_DashMeansMissing(t *testing.T) {
	doc := "Date\n-\nTotal\n$9.99\nTime\n-\n"
	rec, ok := sectionedStrategy{}.TryParse(doc)
	if !ok {
		t.Fatal("expected activation")
	}
	if rec.Date != "" || rec.Time != "" {
		t.Errorf("dash placeholders should leave fields empty, got date=%q time=%q", rec.Date, rec.Time)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "9.99")) {
		t.Errorf("total = %v", rec.Total)
	}
}

func TestSectioned_DeclinesWithoutHeaders(t *testing.T) {
	doc := "WALMART\nMilk $3.48\nTOTAL $3.48\nthanks for shopping"
	if _, ok := (sectionedStrategy{}).TryParse(doc); ok {
		t.Error("should decline text without exact header lines")
	}
}

func TestSectioned_DeclinesShortInput(t *testing.T) {
	if _, ok := (sectionedStrategy{}).TryParse("Date\n2024-01-01"); ok {
		t.Error("should decline input with fewer than three non-empty lines")
	}
}

func TestSectioned_DeclinesHeadersWithoutValues(t *testing.T) {
	if _, ok := (sectionedStrategy{}).TryParse("Date\nTime\nTotal\n"); ok {
		t.Error("should decline when no field gets a value")
	}
}

func TestSectioned_AmountsValuesRequireDollarPrefix(t *testing.T) {
	doc := "Subtotal\n5.60\nTax\n$0.45\nTotal\n$6.05\n"
	rec, ok := sectionedStrategy{}.TryParse(doc)
	if !ok {
		t.Fatal("expected activation")
	}
	if rec.Subtotal != nil {
		t.Errorf("subtotal without $ prefix should be ignored, got %v", rec.Subtotal)
	}
	if rec.Tax == nil || rec.Total == nil {
		t.Error("tax and total should parse")
	}
}
