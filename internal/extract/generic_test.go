package extract

import (
	"testing"
)

func TestGeneric_LabeledReceipt(t *testing.T) {
	text := "STORE: WALMART\nSUBTOTAL $10.00\nTAX $0.80\nTOTAL $10.80"
	rec := genericStrategy{}.Parse(text)

	if rec.Method != MethodGeneric {
		t.Errorf("method = %q, want %q", rec.Method, MethodGeneric)
	}
	if rec.StoreName != "WALMART" {
		t.Errorf("store = %q, want WALMART", rec.StoreName)
	}
	if rec.Subtotal == nil || !rec.Subtotal.Equal(mustDec(t, "10.00")) {
		t.Errorf("subtotal = %v, want 10.00", rec.Subtotal)
	}
	if rec.Tax == nil || !rec.Tax.Equal(mustDec(t, "0.80")) {
		t.Errorf("tax = %v, want 0.80", rec.Tax)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "10.80")) {
		t.Errorf("total = %v, want 10.80", rec.Total)
	}
}

func TestGeneric_LooseLabelsWithoutCurrencySymbol(t *testing.T) {
	text := "Corner Shop\nSub-total: 4.00\nVAT: 0.40\nAmount: 4.40"
	rec := genericStrategy{}.Parse(text)

	if rec.StoreName != "Corner Shop" {
		t.Errorf("store = %q, want Corner Shop", rec.StoreName)
	}
	if rec.Subtotal == nil || !rec.Subtotal.Equal(mustDec(t, "4.00")) {
		t.Errorf("subtotal = %v", rec.Subtotal)
	}
	if rec.Tax == nil || !rec.Tax.Equal(mustDec(t, "0.40")) {
		t.Errorf("tax = %v", rec.Tax)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "4.40")) {
		t.Errorf("total = %v", rec.Total)
	}
}

func TestGeneric_NeverDeclines(t *testing.T) {
	rec, ok := genericStrategy{}.TryParse("completely unrelated text with nothing useful")
	if !ok || rec == nil {
		t.Fatal("generic strategy must always produce a record")
	}
	if rec.Confidence != 0 {
		t.Errorf("empty record should score 0, got %v", rec.Confidence)
	}
}

func TestGeneric_BareItemLinesWithoutCurrency(t *testing.T) {
	text := "Milk 3.48\nBread 2.12\nok\n"
	rec := genericStrategy{}.Parse(text)
	if len(rec.Items) != 2 {
		t.Fatalf("items = %v, want 2", rec.Items)
	}
	if rec.Items[0].Name != "Milk" || !rec.Items[0].Price.Equal(mustDec(t, "3.48")) {
		t.Errorf("first item = %+v", rec.Items[0])
	}
}

func TestGeneric_PaymentAndCashier(t *testing.T) {
	text := "STORE: TARGET\nCashier: Joe\nItem A $1.00\nPaid with debit card ending 1234"
	rec := genericStrategy{}.Parse(text)
	if rec.PaymentMethod != "debit" {
		t.Errorf("payment = %q, want debit", rec.PaymentMethod)
	}
	if rec.Cashier != "Joe" {
		t.Errorf("cashier = %q, want Joe", rec.Cashier)
	}
}
