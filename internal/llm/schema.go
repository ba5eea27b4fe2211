package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map, used locally to validate model payloads before
// decoding. It is deliberately lenient: money fields accept numbers or
// strings, item objects accept either key spelling, and unknown keys
// pass. Structural mistakes (items not an array, object-valued store
// names) are what it exists to catch.
func BuildRecordJSONSchema() map[string]any {
	money := map[string]any{"type": []string{"number", "string"}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"store_name":     map[string]any{"type": "string"},
			"date":           map[string]any{"type": "string"},
			"time":           map[string]any{"type": "string"},
			"subtotal":       money,
			"tax":            money,
			"total":          money,
			"payment_method": map[string]any{"type": "string"},
			"cashier":        map[string]any{"type": "string"},
			"confidence_score": map[string]any{
				"type": "number", "minimum": 0.0, "maximum": 1.0,
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item_name":  map[string]any{"type": "string"},
						"name":       map[string]any{"type": "string"},
						"item_price": money,
						"price":      money,
					},
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// SanitizeRecordJSON drops nulls anywhere in the payload so optional
// fields a model "helpfully" nulled out read as absent downstream.
func SanitizeRecordJSON(raw []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("sanitize: decode: %w", err)
	}
	for k, v := range m {
		if v == nil {
			delete(m, k)
			continue
		}
		if arr, ok := v.([]any); ok {
			for _, el := range arr {
				if obj, ok := el.(map[string]any); ok {
					for ik, iv := range obj {
						if iv == nil {
							delete(obj, ik)
						}
					}
				}
			}
		}
	}
	return json.Marshal(m)
}
