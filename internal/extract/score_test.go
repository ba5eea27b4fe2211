package extract

import (
	"math"
	"testing"
)

func TestScore_EmptyRecord(t *testing.T) {
	if got := Score(&StructuredRecord{}); got != 0 {
		t.Errorf("empty record score = %v, want 0", got)
	}
	if got := Score(nil); got != 0 {
		t.Errorf("nil record score = %v, want 0", got)
	}
}

func TestScore_IndividualWeights(t *testing.T) {
	ten := mustDec(t, "10.00")
	zero := mustDec(t, "0")

	cases := []struct {
		name string
		rec  StructuredRecord
		want float64
	}{
		{"store", StructuredRecord{StoreName: "WALMART"}, 0.15},
		{"date", StructuredRecord{Date: "2024-01-01"}, 0.15},
		{"time", StructuredRecord{Time: "14:30"}, 0.10},
		{"subtotal", StructuredRecord{Subtotal: &ten}, 0.20},
		{"zero tax counts", StructuredRecord{Tax: &zero}, 0.15},
		{"total", StructuredRecord{Total: &ten}, 0.20},
		{"payment", StructuredRecord{PaymentMethod: "cash"}, 0.05},
		{"items", StructuredRecord{Items: []LineItem{{Name: "milk", Price: ten}}}, 0.20},
	}
	for _, tc := range cases {
		if got := Score(&tc.rec); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: score = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestScore_ZeroAmountsDoNotCount(t *testing.T) {
	zero := mustDec(t, "0")
	rec := StructuredRecord{Subtotal: &zero, Total: &zero}
	if got := Score(&rec); got != 0 {
		t.Errorf("zero subtotal/total should not score, got %v", got)
	}
}

func TestScore_CappedAtOne(t *testing.T) {
	ten := mustDec(t, "10.00")
	tax := mustDec(t, "0.80")
	rec := StructuredRecord{
		StoreName:     "WALMART",
		Date:          "2024-01-01",
		Time:          "14:30",
		Subtotal:      &ten,
		Tax:           &tax,
		Total:         &ten,
		PaymentMethod: "cash",
		Items:         []LineItem{{Name: "milk", Price: ten}},
	}
	// All weights sum to 1.20; the score must cap at exactly 1.0.
	if got := Score(&rec); got != 1.0 {
		t.Errorf("full record score = %v, want 1.0", got)
	}
}
