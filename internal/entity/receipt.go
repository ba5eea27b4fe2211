package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt represents a fully normalized receipt for data transfer
// between layers. Date and PurchaseTime stay nil when the source text
// never yielded a parseable value.
type Receipt struct {
	ID            uuid.UUID        `json:"id"`
	StoreName     string           `json:"store_name"`
	Date          *time.Time       `json:"date,omitempty"`
	PurchaseTime  *time.Time       `json:"time,omitempty"`
	Items         []ReceiptItem    `json:"items"`
	Subtotal      *decimal.Decimal `json:"subtotal,omitempty"`
	Tax           *decimal.Decimal `json:"tax,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Cashier       string           `json:"cashier,omitempty"`
	Confidence    float64          `json:"confidence_score"`
	Method        string           `json:"extraction_method,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ReceiptItem represents one purchased line item.
type ReceiptItem struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"item_name"`
	Price decimal.Decimal `json:"item_price"`
}
