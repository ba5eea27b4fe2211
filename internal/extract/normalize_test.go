package extract

import (
	"errors"
	"testing"
	"time"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
)

func TestDecodeLooseRecord_MixedTypes(t *testing.T) {
	raw := []byte(`{
		"store_name": "Walmart",
		"date": "2024-03-15",
		"time": "14:30",
		"subtotal": "10.00",
		"tax": 0.8,
		"total": "$10.80",
		"payment_method": "cash",
		"items": [
			{"item_name": "Milk", "item_price": 3.48},
			{"name": "Bread", "price": "2.12"}
		]
	}`)
	rec, err := DecodeLooseRecord(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.StoreName != "Walmart" {
		t.Errorf("store = %q", rec.StoreName)
	}
	if rec.Subtotal == nil || !rec.Subtotal.Equal(mustDec(t, "10.00")) {
		t.Errorf("subtotal = %v", rec.Subtotal)
	}
	if rec.Tax == nil || !rec.Tax.Equal(mustDec(t, "0.8")) {
		t.Errorf("tax = %v", rec.Tax)
	}
	if rec.Total == nil || !rec.Total.Equal(mustDec(t, "10.80")) {
		t.Errorf("total = %v", rec.Total)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("items = %v", rec.Items)
	}
	if rec.Items[1].Name != "Bread" || !rec.Items[1].Price.Equal(mustDec(t, "2.12")) {
		t.Errorf("aliased item keys not honored: %+v", rec.Items[1])
	}
}

func TestDecodeLooseRecord_MissingItemNameFails(t *testing.T) {
	raw := []byte(`{"items": [{"item_price": 3.48}]}`)
	_, err := DecodeLooseRecord(raw)
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDecodeLooseRecord_UnconvertiblePriceDropsItem(t *testing.T) {
	raw := []byte(`{"items": [{"item_name": "Milk", "item_price": "n/a"}, {"item_name": "Bread", "item_price": 2.12}]}`)
	rec, err := DecodeLooseRecord(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rec.Items) != 1 || rec.Items[0].Name != "Bread" {
		t.Errorf("expected only Bread to survive, got %v", rec.Items)
	}
}

func TestDecodeLooseRecord_BadJSON(t *testing.T) {
	if _, err := DecodeLooseRecord([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNormalize_DateAndTimeParsing(t *testing.T) {
	rec := &StructuredRecord{Date: "03/15/2024", Time: "2:45 PM"}
	r, err := Normalize(rec)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Date == nil || !r.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", r.Date)
	}
	if r.PurchaseTime == nil || r.PurchaseTime.Hour() != 14 || r.PurchaseTime.Minute() != 45 {
		t.Errorf("time = %v", r.PurchaseTime)
	}
}

func TestNormalize_RoundTripStable(t *testing.T) {
	sub := mustDec(t, "10.00")
	tax := mustDec(t, "0.80")
	first, err := Normalize(&StructuredRecord{
		StoreName:     "WALMART",
		Date:          "2024-03-15",
		Time:          "2:45 PM",
		Items:         []LineItem{{Name: "Milk", Price: mustDec(t, "3.48")}},
		Subtotal:      &sub,
		Tax:           &tax,
		PaymentMethod: "cash",
		Confidence:    0.85,
		Method:        MethodGeneric,
	})
	if err != nil {
		t.Fatalf("first normalize failed: %v", err)
	}

	// Re-serialize the normalized receipt the way it would be stored
	// and feed it through again.
	again := &StructuredRecord{
		StoreName:     first.StoreName,
		Date:          first.Date.Format("2006-01-02"),
		Time:          first.PurchaseTime.Format("15:04:05"),
		PaymentMethod: first.PaymentMethod,
		Subtotal:      first.Subtotal,
		Tax:           first.Tax,
		Total:         first.Total,
		Confidence:    first.Confidence,
		Method:        first.Method,
	}
	for _, it := range first.Items {
		again.Items = append(again.Items, LineItem{Name: it.Name, Price: it.Price})
	}

	second, err := Normalize(again)
	if err != nil {
		t.Fatalf("second normalize failed: %v", err)
	}
	if second.StoreName != first.StoreName {
		t.Errorf("store changed: %q -> %q", first.StoreName, second.StoreName)
	}
	if second.Date == nil || !second.Date.Equal(*first.Date) {
		t.Errorf("date changed: %v -> %v", first.Date, second.Date)
	}
	if second.PurchaseTime == nil ||
		second.PurchaseTime.Hour() != first.PurchaseTime.Hour() ||
		second.PurchaseTime.Minute() != first.PurchaseTime.Minute() {
		t.Errorf("time changed: %v -> %v", first.PurchaseTime, second.PurchaseTime)
	}
	if !second.Subtotal.Equal(*first.Subtotal) || !second.Tax.Equal(*first.Tax) || !second.Total.Equal(*first.Total) {
		t.Errorf("amounts changed: %v/%v/%v -> %v/%v/%v",
			first.Subtotal, first.Tax, first.Total, second.Subtotal, second.Tax, second.Total)
	}
	if len(second.Items) != 1 || second.Items[0].Name != "Milk" || !second.Items[0].Price.Equal(first.Items[0].Price) {
		t.Errorf("items changed: %+v -> %+v", first.Items, second.Items)
	}
	if second.PaymentMethod != first.PaymentMethod || second.Confidence != first.Confidence {
		t.Errorf("payment/confidence changed: %q %v -> %q %v",
			first.PaymentMethod, first.Confidence, second.PaymentMethod, second.Confidence)
	}
}

func TestNormalize_UnparseableDateStaysNil(t *testing.T) {
	r, err := Normalize(&StructuredRecord{Date: "the ides of march", Time: "midnight"})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Date != nil || r.PurchaseTime != nil {
		t.Errorf("unparseable date/time should stay nil, got %v / %v", r.Date, r.PurchaseTime)
	}
}

func TestNormalize_DerivesTotalFromSubtotalAndTax(t *testing.T) {
	sub := mustDec(t, "10.00")
	tax := mustDec(t, "0.80")
	r, err := Normalize(&StructuredRecord{Subtotal: &sub, Tax: &tax})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Total == nil || !r.Total.Equal(mustDec(t, "10.80")) {
		t.Errorf("total = %v, want 10.80", r.Total)
	}
}

func TestNormalize_DerivesSubtotalAndTax(t *testing.T) {
	total := mustDec(t, "10.80")
	tax := mustDec(t, "0.80")
	r, err := Normalize(&StructuredRecord{Total: &total, Tax: &tax})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Subtotal == nil || !r.Subtotal.Equal(mustDec(t, "10.00")) {
		t.Errorf("subtotal = %v, want 10.00", r.Subtotal)
	}

	sub := mustDec(t, "10.00")
	r, err = Normalize(&StructuredRecord{Total: &total, Subtotal: &sub})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Tax == nil || !r.Tax.Equal(mustDec(t, "0.80")) {
		t.Errorf("tax = %v, want 0.80", r.Tax)
	}
}

func TestNormalize_ItemsAndTaxDeriveBothAmounts(t *testing.T) {
	tax := mustDec(t, "0.45")
	rec := &StructuredRecord{
		Tax: &tax,
		Items: []LineItem{
			{Name: "Milk", Price: mustDec(t, "3.48")},
			{Name: "Bread", Price: mustDec(t, "2.12")},
		},
	}
	r, err := Normalize(rec)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if r.Subtotal == nil || !r.Subtotal.Equal(mustDec(t, "5.60")) {
		t.Errorf("subtotal = %v, want 5.60", r.Subtotal)
	}
	if r.Total == nil || !r.Total.Equal(mustDec(t, "6.05")) {
		t.Errorf("total = %v, want 6.05", r.Total)
	}
}

func TestNormalize_StatedAmountsNeverOverwritten(t *testing.T) {
	// Inconsistent triple: left exactly as found.
	sub := mustDec(t, "10.00")
	tax := mustDec(t, "1.00")
	total := mustDec(t, "99.00")
	r, err := Normalize(&StructuredRecord{Subtotal: &sub, Tax: &tax, Total: &total})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !r.Total.Equal(total) || !r.Subtotal.Equal(sub) || !r.Tax.Equal(tax) {
		t.Error("stated amounts must not be rewritten")
	}
}

func TestNormalize_LongStoreNameTruncated(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "ABCDE"
	}
	r, err := Normalize(&StructuredRecord{StoreName: long})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(r.StoreName) != maxStoreNameLen {
		t.Errorf("store name length = %d, want %d", len(r.StoreName), maxStoreNameLen)
	}
}

func TestNormalize_InvalidItemsFail(t *testing.T) {
	bad := []*StructuredRecord{
		{Items: []LineItem{{Name: "  ", Price: mustDec(t, "1.00")}}},
		{Items: []LineItem{{Name: "Milk", Price: mustDec(t, "0")}}},
		nil,
	}
	for i, rec := range bad {
		if _, err := Normalize(rec); !errors.Is(err, common.ErrValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}
