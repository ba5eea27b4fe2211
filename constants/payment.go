package constants

import "strings"

// paymentKeywords is the detection order for payment methods. Earlier
// entries win when a receipt mentions more than one (a debit card
// receipt usually also says "VISA").
var paymentKeywords = []struct {
	keyword string
	display string
}{
	{"debit", "debit"},
	{"credit card", "Credit Card"},
	{"credit", "credit"},
	{"cash", "cash"},
	{"visa", "visa"},
	{"american express", "American Express"},
	{"amex", "American Express"},
	{"mastercard", "mastercard"},
	{"check", "check"},
}

// DetectPaymentMethod scans free text for a known payment keyword and
// returns its display form. The empty string means no method was found.
func DetectPaymentMethod(text string) string {
	lower := strings.ToLower(text)
	for _, pm := range paymentKeywords {
		if strings.Contains(lower, pm.keyword) {
			return pm.display
		}
	}
	return ""
}
