package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

// DecodeLooseRecord builds a StructuredRecord from model-produced JSON
// where field types are unreliable: prices arrive as numbers or as
// "$3.50" strings, and items may use either of two key spellings.
// Non-convertible money values become absent rather than failing; a
// missing item name is the one structural defect that does fail.
func DecodeLooseRecord(raw []byte) (*StructuredRecord, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, common.WrapError(err, "decode record")
	}

	rec := &StructuredRecord{
		StoreName:     truncateStoreName(coerceString(m["store_name"])),
		Date:          coerceString(m["date"]),
		Time:          coerceString(m["time"]),
		PaymentMethod: coerceString(m["payment_method"]),
		Cashier:       coerceString(m["cashier"]),
		Subtotal:      coerceMoney(m["subtotal"]),
		Tax:           coerceMoney(m["tax"]),
		Total:         coerceMoney(m["total"]),
	}

	rawItems, _ := m["items"].([]any)
	for i, ri := range rawItems {
		obj, ok := ri.(map[string]any)
		if !ok {
			continue
		}
		name := coerceString(obj["item_name"])
		if name == "" {
			name = coerceString(obj["name"])
		}
		if name == "" {
			return nil, fmt.Errorf("item %d has no item_name or name key: %w", i, common.ErrValidation)
		}
		price := coerceMoney(obj["item_price"])
		if price == nil {
			price = coerceMoney(obj["price"])
		}
		if price == nil || !price.IsPositive() {
			continue
		}
		rec.Items = append(rec.Items, LineItem{Name: name, Price: *price})
	}

	return rec, nil
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceMoney accepts JSON numbers and price-looking strings.
func coerceMoney(v any) *decimal.Decimal {
	switch t := v.(type) {
	case float64:
		d := decimal.NewFromFloat(t)
		return &d
	case string:
		s := strings.TrimSpace(t)
		s = strings.Trim(s, "$£€ ")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		return &d
	}
	return nil
}

// Normalize turns a loosely typed record into a fully typed receipt.
// Dates and times that match none of the accepted layouts stay nil
// instead of failing the receipt; a missing member of the amount
// triple is computed whenever the other two are known.
func Normalize(rec *StructuredRecord) (*entity.Receipt, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil record: %w", common.ErrValidation)
	}

	r := &entity.Receipt{
		StoreName:     truncateStoreName(strings.TrimSpace(rec.StoreName)),
		PaymentMethod: strings.TrimSpace(rec.PaymentMethod),
		Cashier:       strings.TrimSpace(rec.Cashier),
		Confidence:    rec.Confidence,
		Method:        rec.Method,
	}

	if d, ok := parseDateToken(rec.Date); ok {
		r.Date = &d
	}
	if t, ok := parseTimeToken(rec.Time); ok {
		r.PurchaseTime = &t
	}

	for i, it := range rec.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("item %d has an empty name: %w", i, common.ErrValidation)
		}
		if !it.Price.IsPositive() {
			return nil, fmt.Errorf("item %q has non-positive price %s: %w", name, it.Price, common.ErrValidation)
		}
		r.Items = append(r.Items, entity.ReceiptItem{Name: name, Price: it.Price})
	}

	r.Subtotal = cloneDec(rec.Subtotal)
	r.Tax = cloneDec(rec.Tax)
	r.Total = cloneDec(rec.Total)
	deriveAmounts(r)

	return r, nil
}

// deriveAmounts completes the subtotal/tax/total triple. Stated values
// are never overwritten, and inconsistent triples are left as found.
func deriveAmounts(r *entity.Receipt) {
	switch {
	case r.Subtotal != nil && r.Tax != nil && r.Total == nil:
		r.Total = decPtr(r.Subtotal.Add(*r.Tax))
	case r.Total != nil && r.Tax != nil && r.Subtotal == nil:
		r.Subtotal = decPtr(r.Total.Sub(*r.Tax))
	case r.Total != nil && r.Subtotal != nil && r.Tax == nil:
		r.Tax = decPtr(r.Total.Sub(*r.Subtotal))
	case r.Subtotal == nil && r.Total == nil && r.Tax != nil && len(r.Items) > 0:
		sum := decimal.Zero
		for _, it := range r.Items {
			sum = sum.Add(it.Price)
		}
		r.Subtotal = decPtr(sum)
		r.Total = decPtr(sum.Add(*r.Tax))
	}
}

func cloneDec(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := *v
	return &d
}
