package llm

import "strings"

// BuildPrompt composes the extraction instruction for a single chunk
// of receipt text. The field list mirrors the StructuredRecord shape
// so a well-behaved model response decodes without remapping.
func BuildPrompt(text string) string {
	parts := []string{
		"You are a receipt parser. Extract structured data from the receipt text below.",
		"Return ONLY a JSON object, no prose and no markdown fences.",
		"Fields: store_name (string), date (YYYY-MM-DD string), time (HH:MM string),",
		"items (array of {item_name, item_price}), subtotal (number), tax (number),",
		"total (number), payment_method (string), cashier (string).",
		"Omit any field that is not present in the text. Never output null.",
		"",
		"Receipt text:",
		text,
	}
	return strings.Join(parts, "\n")
}
