package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
)

// narrativeIndicators are phrases that mark prose-style receipts,
// the kind that read like a shopping story instead of a register tape.
var narrativeIndicators = []string{
	"shopper", "visited", "stopped by", "picked up", "headed to checkout",
	"total came to", "priced at", "costing", "loaf of", "bottle of",
	"dozen", "grabbed", "made her way", "cashier", "tallied",
}

var narrativeStorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:at|visited|stopped by|went to)\s+([A-Z][A-Za-z\s]*?(?:Superstore|Supercenter|Store|Market|Center|Mall))`),
	regexp.MustCompile(`(?:at|visited|stopped by|went to)\s+(Walmart|Target|Amazon|Costco|Safeway|Kroger|Whole Foods|CVS|Walgreens)`),
	regexp.MustCompile(`([A-Z][A-Za-z]+\s+(?:Superstore|Supercenter))`),
}

var narrativeTotalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s+came\s+to\s+\$?(\d[\d,]*\.?\d*)`),
	regexp.MustCompile(`(?i)total\s+was\s+\$?(\d[\d,]*\.?\d*)`),
	regexp.MustCompile(`(?i)total\s+of\s+\$?(\d[\d,]*\.?\d*)`),
	regexp.MustCompile(`(?i)\btotal:?\s+\$?(\d[\d,]*\.?\d*)`),
	regexp.MustCompile(`(?i)tallied\s+everything.*?\$?(\d[\d,]*\.\d+)`),
}

var narrativeTaxPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tax(?:es)?\s+(?:of|was|came\s+to)\s+\$?(\d[\d,]*\.?\d*)`),
	regexp.MustCompile(`(?i)including\s+\$?(\d[\d,]*\.?\d*)\s+(?:in\s+)?tax`),
	regexp.MustCompile(`(?i)\btax:?\s+\$?(\d[\d,]*\.?\d*)`),
}

// subtotalReconcileTolerance is how far the item sum may drift from
// the stated total and still be trusted as the subtotal. One whole
// currency unit absorbs rounding plus small untracked fees.
var subtotalReconcileTolerance = decimal.NewFromInt(1)

// narrativeStrategy parses prose receipts. Once activated its result
// is final; the cascade never second-guesses it.
type narrativeStrategy struct{}

func (narrativeStrategy) Name() string { return MethodNarrative }

func (narrativeStrategy) TryParse(text string) (*StructuredRecord, bool) {
	if !looksNarrative(text) {
		return nil, false
	}

	// No time extraction here: prose rarely states a purchase time,
	// and a stray clock reading would inflate the score.
	rec := &StructuredRecord{
		StoreName:     narrativeStore(text),
		Date:          scanDate(text),
		Items:         narrativeItems(text),
		Total:         firstMoneyMatch(narrativeTotalPatterns, text),
		Tax:           firstMoneyMatch(narrativeTaxPatterns, text),
		PaymentMethod: constants.DetectPaymentMethod(text),
	}
	if rec.StoreName == "" && rec.Date == "" && len(rec.Items) == 0 && rec.Total == nil {
		return nil, false
	}

	// Trust the item sum as subtotal only when it lands close to the
	// stated total.
	if rec.Total != nil && len(rec.Items) > 0 {
		sum := sumItemPrices(rec.Items)
		if sum.Sub(*rec.Total).Abs().LessThan(subtotalReconcileTolerance) {
			rec.Subtotal = decPtr(sum)
		}
	}

	rec.Method = MethodNarrative
	rec.Confidence = Score(rec)
	return rec, true
}

func looksNarrative(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range narrativeIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

func narrativeStore(text string) string {
	for _, pat := range narrativeStorePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return truncateStoreName(strings.TrimSpace(m[1]))
		}
	}
	return ""
}

func firstMoneyMatch(pats []*regexp.Regexp, text string) *decimal.Decimal {
	for _, pat := range pats {
		if m := pat.FindStringSubmatch(text); m != nil {
			if v := parseMoneyToken(m[1]); v != nil {
				return v
			}
		}
	}
	return nil
}
