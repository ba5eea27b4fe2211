package extract

import "github.com/shopspring/decimal"

// Extraction method labels, recorded on every StructuredRecord so a
// caller can tell which strategy in the cascade produced it.
const (
	MethodNarrative = "narrative"
	MethodModel     = "model"
	MethodSectioned = "sectioned"
	MethodGeneric   = "generic"
)

// LineItem is a single purchased item pulled out of receipt text.
type LineItem struct {
	Name  string          `json:"item_name"`
	Price decimal.Decimal `json:"item_price"`
}

// StructuredRecord is the loosely typed intermediate that every
// strategy produces. Date and Time stay in their source spelling; the
// normalizer turns them into real time values later. Amount fields are
// nil when the text never mentioned them.
type StructuredRecord struct {
	StoreName     string           `json:"store_name,omitempty"`
	Date          string           `json:"date,omitempty"`
	Time          string           `json:"time,omitempty"`
	Items         []LineItem       `json:"items"`
	Subtotal      *decimal.Decimal `json:"subtotal,omitempty"`
	Tax           *decimal.Decimal `json:"tax,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Cashier       string           `json:"cashier,omitempty"`
	Confidence    float64          `json:"confidence_score"`
	Method        string           `json:"extraction_method,omitempty"`
}

func decPtr(v decimal.Decimal) *decimal.Decimal { return &v }
