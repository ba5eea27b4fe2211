package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/OnteruYallaiah21/StrcuctIq/gen/ent"
	structiqpb "github.com/OnteruYallaiah21/StrcuctIq/gen/proto/structiq/v1"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

// DecFromFloatPtr converts an optional numeric column into a decimal.
func DecFromFloatPtr(p *float64) *decimal.Decimal {
	if p == nil {
		return nil
	}
	d := decimal.NewFromFloat(*p)
	return &d
}

// FloatPtrFromDec converts an optional decimal amount into a numeric
// column value.
func FloatPtrFromDec(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// ParseYMD parses a calendar date and pins it to midnight UTC to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToReceipt(e *ent.Receipt) *entity.Receipt {
	r := &entity.Receipt{
		ID:            e.ID,
		StoreName:     e.StoreName,
		Date:          e.TxDate,
		PurchaseTime:  e.PurchaseTime,
		Subtotal:      DecFromFloatPtr(e.Subtotal),
		Tax:           DecFromFloatPtr(e.Tax),
		Total:         DecFromFloatPtr(e.Total),
		PaymentMethod: e.PaymentMethod,
		Cashier:       e.Cashier,
		Confidence:    e.Confidence,
		Method:        e.ExtractionMethod,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	for _, it := range e.Edges.Items {
		r.Items = append(r.Items, ToReceiptItem(it))
	}
	return r
}

func ToReceiptItem(e *ent.ReceiptItem) entity.ReceiptItem {
	return entity.ReceiptItem{
		ID:    e.ID,
		Name:  e.Name,
		Price: decimal.NewFromFloat(e.Price),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func ToPBReceipt(r *entity.Receipt) *structiqpb.Receipt {
	out := &structiqpb.Receipt{
		Id:               r.ID.String(),
		StoreName:        r.StoreName,
		Subtotal:         money(r.Subtotal),
		Tax:              money(r.Tax),
		Total:            money(r.Total),
		PaymentMethod:    r.PaymentMethod,
		Cashier:          r.Cashier,
		ConfidenceScore:  r.Confidence,
		ExtractionMethod: r.Method,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.Date != nil {
		out.Date = r.Date.Format("2006-01-02")
	}
	if r.PurchaseTime != nil {
		out.Time = r.PurchaseTime.Format("15:04:05")
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, &structiqpb.ReceiptItem{
			Id:        it.ID.String(),
			ItemName:  it.Name,
			ItemPrice: it.Price.StringFixed(2),
		})
	}
	return out
}

func ToPBExtractJob(j *entity.ExtractJob) *structiqpb.ExtractJob {
	out := &structiqpb.ExtractJob{
		Id:               j.ID.String(),
		Source:           j.Source,
		Format:           j.Format,
		Status:           j.Status,
		StartedAt:        j.StartedAt.UTC().Format(time.RFC3339),
		ErrorMessage:     strOrEmpty(j.ErrorMessage),
		ExtractionMethod: strOrEmpty(j.Method),
	}
	if j.ReceiptID != nil {
		out.ReceiptId = j.ReceiptID.String()
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.Confidence != nil {
		out.ExtractionConfidence = *j.Confidence
	}
	return out
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		ReceiptID:     e.ReceiptID,
		Source:        e.Source,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		Confidence:    e.ExtractionConfidence,
		Method:        e.ExtractionMethod,
		RawText:       e.RawText,
		ExtractedJSON: e.ExtractedJSON,
		ModelName:     e.ModelName,
	}
}
