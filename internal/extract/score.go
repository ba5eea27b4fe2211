package extract

import "strings"

// Field weights for confidence scoring. They intentionally sum above
// 1.0 so a record does not need every field to reach full confidence;
// the sum is capped, never renormalized.
const (
	weightStoreName = 0.15
	weightDate      = 0.15
	weightTime      = 0.10
	weightSubtotal  = 0.20
	weightTax       = 0.15
	weightTotal     = 0.20
	weightPayment   = 0.05
	weightItems     = 0.20
)

// Score rates field completeness of a record on [0, 1]. Subtotal and
// total only count when positive; tax counts at zero because tax-free
// receipts are legitimate.
func Score(rec *StructuredRecord) float64 {
	if rec == nil {
		return 0
	}
	score := 0.0
	if strings.TrimSpace(rec.StoreName) != "" {
		score += weightStoreName
	}
	if strings.TrimSpace(rec.Date) != "" {
		score += weightDate
	}
	if strings.TrimSpace(rec.Time) != "" {
		score += weightTime
	}
	if rec.Subtotal != nil && rec.Subtotal.IsPositive() {
		score += weightSubtotal
	}
	if rec.Tax != nil && !rec.Tax.IsNegative() {
		score += weightTax
	}
	if rec.Total != nil && rec.Total.IsPositive() {
		score += weightTotal
	}
	if strings.TrimSpace(rec.PaymentMethod) != "" {
		score += weightPayment
	}
	if len(rec.Items) > 0 {
		score += weightItems
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
