package llm

import (
	"encoding/json"
	"testing"
)

func TestValidateRecordSchema_AcceptsMixedMoneyTypes(t *testing.T) {
	data := []byte(`{
		"store_name": "Walmart",
		"subtotal": "10.00",
		"tax": 0.8,
		"items": [{"item_name": "Milk", "item_price": 3.48}, {"name": "Bread", "price": "2.12"}]
	}`)
	if err := ValidateJSONAgainstSchema(BuildRecordJSONSchema(), data); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestValidateRecordSchema_RejectsWrongShapes(t *testing.T) {
	cases := []string{
		`{"items": "not an array"}`,
		`{"store_name": {"nested": true}}`,
		`{"confidence_score": 2.0}`,
	}
	for _, c := range cases {
		if err := ValidateJSONAgainstSchema(BuildRecordJSONSchema(), []byte(c)); err == nil {
			t.Errorf("expected rejection for %s", c)
		}
	}
}

func TestSanitizeRecordJSON_DropsNulls(t *testing.T) {
	raw := []byte(`{"store_name": "CVS", "tax": null, "items": [{"item_name": "Milk", "item_price": null}]}`)
	clean, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(clean, &m); err != nil {
		t.Fatalf("bad output: %v", err)
	}
	if _, ok := m["tax"]; ok {
		t.Error("null tax should be dropped")
	}
	items := m["items"].([]any)
	item := items[0].(map[string]any)
	if _, ok := item["item_price"]; ok {
		t.Error("null item price should be dropped")
	}
}
