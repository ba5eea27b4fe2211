package extract

import (
	"regexp"
	"strings"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
)

// Loose label regexes for the second pass of the generic strategy.
// Word boundaries keep "total" from matching inside "subtotal".
var (
	reLooseStore    = regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s&]+(?:Store|Shop|Market|Supermarket|Center|Mall|Outlet))`)
	reLooseSubtotal = regexp.MustCompile(`(?i)\bsub-?total\b\s*:?\s*[$£€]?\s*(\d[\d,]*\.?\d*)`)
	reLooseTax      = regexp.MustCompile(`(?i)\b(?:tax|vat)\b\s*:?\s*[$£€]?\s*(\d[\d,]*\.?\d*)`)
	// No lookbehind in RE2: the leading alternative keeps "total" from
	// matching inside "sub-total".
	reLooseTotal = regexp.MustCompile(`(?i)(?:^|[^-\w])(?:total|amount)\b\s*:?\s*[$£€]?\s*(\d[\d,]*\.?\d*)`)
	reLooseItem  = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9\s&.-]*?)\s+(\d+\.\d{1,2})\s*$`)
)

// genericStrategy is the floor of the cascade. It never declines, so
// every input yields a record even if all fields stay empty.
type genericStrategy struct{}

func (genericStrategy) Name() string { return MethodGeneric }

func (g genericStrategy) TryParse(text string) (*StructuredRecord, bool) {
	return g.Parse(text), true
}

// Parse runs the labeled line scan first, then loosened regexes for
// whatever the scan missed.
func (genericStrategy) Parse(text string) *StructuredRecord {
	lines := strings.Split(text, "\n")

	rec := &StructuredRecord{
		StoreName:     scanStoreName(lines),
		Date:          scanDate(text),
		Time:          scanTime(text),
		Cashier:       scanCashier(lines),
		PaymentMethod: constants.DetectPaymentMethod(text),
		Items:         scanItems(lines),
	}
	rec.Subtotal, rec.Tax, rec.Total = scanAmounts(lines)

	if rec.StoreName == "" {
		if m := reLooseStore.FindStringSubmatch(text); m != nil {
			rec.StoreName = truncateStoreName(strings.TrimSpace(m[1]))
		}
	}
	if rec.Subtotal == nil {
		if m := reLooseSubtotal.FindStringSubmatch(text); m != nil {
			rec.Subtotal = parseMoneyToken(m[1])
		}
	}
	if rec.Tax == nil {
		if m := reLooseTax.FindStringSubmatch(text); m != nil {
			rec.Tax = parseMoneyToken(m[1])
		}
	}
	if rec.Total == nil {
		if m := reLooseTotal.FindStringSubmatch(text); m != nil {
			rec.Total = parseMoneyToken(m[1])
		}
	}

	// With no currency symbols anywhere, fall back to bare name-number
	// lines for items. No skip list here; this input is already as
	// unstructured as it gets.
	if len(rec.Items) == 0 && !strings.ContainsAny(text, "$£€") {
		for _, line := range lines {
			m := reLooseItem.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			price := parseMoneyToken(m[2])
			if price == nil || !price.IsPositive() || len(name) <= 2 || len(name) >= 100 {
				continue
			}
			rec.Items = append(rec.Items, LineItem{Name: name, Price: *price})
		}
	}

	rec.Method = MethodGeneric
	rec.Confidence = Score(rec)
	return rec
}
