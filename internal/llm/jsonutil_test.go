package llm

import (
	"errors"
	"testing"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"store_name": "Walmart"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"store_name": "Walmart"}` {
		t.Errorf("got %s", got)
	}
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	content := "```json\n{\"total\": 10.80}\n```"
	got, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"total": 10.80}` {
		t.Errorf("got %s", got)
	}
}

func TestExtractJSON_ChatterAroundObject(t *testing.T) {
	content := "Sure! Here is the extracted data:\n{\"store_name\": \"CVS\"}\nLet me know if you need more."
	got, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"store_name": "CVS"}` {
		t.Errorf("got %s", got)
	}
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	content := `prefix {"items": [{"item_name": "Milk", "item_price": 3.48}]} suffix`
	got, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"items": [{"item_name": "Milk", "item_price": 3.48}]}` {
		t.Errorf("got %s", got)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON("I could not parse that receipt, sorry.")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}
}
