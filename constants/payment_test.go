package constants

import "testing"

func TestDetectPaymentMethod(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"paid with debit VISA card ending 1234", "debit"},
		{"VISA DEBIT", "debit"},
		{"paid by credit card", "Credit Card"},
		{"store credit applied", "credit"},
		{"CASH TENDERED $20.00", "cash"},
		{"Visa ****1111", "visa"},
		{"AMERICAN EXPRESS", "American Express"},
		{"paid via amex", "American Express"},
		{"Mastercard contactless", "mastercard"},
		{"paid by check", "check"},
		{"no payment mentioned", ""},
	}
	for _, tc := range cases {
		if got := DetectPaymentMethod(tc.text); got != tc.want {
			t.Errorf("DetectPaymentMethod(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
