package extract

import (
	"testing"
)

func TestScanStoreName_StripsSuffixKeyword(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"STORE: WALMART", "WALMART"},
		{"Walmart Supercenter", "WALMART"},
		{"FRESH MARKET", "FRESH"},
		{"Some Random Header", ""},
	}
	for _, tc := range cases {
		got := scanStoreName([]string{tc.line})
		if got != tc.want {
			t.Errorf("scanStoreName(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestScanStoreName_BrandWithoutSuffix(t *testing.T) {
	got := scanStoreName([]string{"Welcome to Costco", "thanks for shopping"})
	if got != "COSTCO" {
		t.Errorf("expected COSTCO, got %q", got)
	}
}

func TestScanStoreName_SkipsLongLines(t *testing.T) {
	long := "This line mentions a Store but is way too long to be a receipt header line at all"
	if got := scanStoreName([]string{long}); got != "" {
		t.Errorf("expected no store from a long line, got %q", got)
	}
}

func TestScanDate_Formats(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Date: 2024-03-15", "2024-03-15"},
		{"Purchased 3/5/2024 at noon", "2024-03-05"},
		{"on November 2nd, 2024", "2024-11-02"},
		{"Jan 7, 2023 receipt", "2023-01-07"},
		{"no date here", ""},
	}
	for _, tc := range cases {
		if got := scanDate(tc.text); got != tc.want {
			t.Errorf("scanDate(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestScanTime_NormalizesMeridiem(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"TIME: 14:30", "14:30"},
		{"at 2:45pm the cashier", "2:45 PM"},
		{"14:30:15 checkout", "14:30:15"},
		{"nothing here", ""},
	}
	for _, tc := range cases {
		if got := scanTime(tc.text); got != tc.want {
			t.Errorf("scanTime(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestScanCashier(t *testing.T) {
	lines := []string{"WALMART", "Cashier: Maria", "TOTAL $5.00"}
	if got := scanCashier(lines); got != "Maria" {
		t.Errorf("expected Maria, got %q", got)
	}
}

func TestScanAmounts_TotalLineExcludesSubtotal(t *testing.T) {
	lines := []string{"SUBTOTAL $10.00", "TAX $0.80", "TOTAL $10.80"}
	sub, tax, total := scanAmounts(lines)
	if sub == nil || !sub.Equal(mustDec(t, "10.00")) {
		t.Fatalf("subtotal = %v, want 10.00", sub)
	}
	if tax == nil || !tax.Equal(mustDec(t, "0.80")) {
		t.Fatalf("tax = %v, want 0.80", tax)
	}
	if total == nil || !total.Equal(mustDec(t, "10.80")) {
		t.Fatalf("total = %v, want 10.80", total)
	}
}

func TestScanAmounts_FirstLabeledLineWins(t *testing.T) {
	_, _, total := scanAmounts([]string{"TOTAL $10.80", "TOTAL SAVINGS $2.00"})
	if total == nil || !total.Equal(mustDec(t, "10.80")) {
		t.Errorf("total = %v, want 10.80 from the first TOTAL line", total)
	}

	_, tax, _ := scanAmounts([]string{"TAX $0.80", "TAX EXEMPT $0.10"})
	if tax == nil || !tax.Equal(mustDec(t, "0.80")) {
		t.Errorf("tax = %v, want 0.80 from the first TAX line", tax)
	}
}

func TestScanAmounts_RequiresCurrencySymbol(t *testing.T) {
	_, _, total := scanAmounts([]string{"TOTAL 10.80"})
	if total != nil {
		t.Errorf("expected no total without a currency symbol, got %v", total)
	}
}

func TestParseMoneyToken_ThousandsSeparators(t *testing.T) {
	v := parseMoneyToken("$1,234.56 charged")
	if v == nil || !v.Equal(mustDec(t, "1234.56")) {
		t.Errorf("parseMoneyToken = %v, want 1234.56", v)
	}
}

func TestParseDateToken_AllLayouts(t *testing.T) {
	for _, s := range []string{"2024-03-15", "03-15-2024", "15-03-2024", "2024/03/15", "03/15/2024", "15/03/2024"} {
		if _, ok := parseDateToken(s); !ok {
			t.Errorf("parseDateToken(%q) failed", s)
		}
	}
	if _, ok := parseDateToken("not a date"); ok {
		t.Error("expected failure for junk input")
	}
}

func TestParseTimeToken_AllLayouts(t *testing.T) {
	for _, s := range []string{"14:30", "14:30:15", "2:45 PM", "2:45:10 pm"} {
		if _, ok := parseTimeToken(s); !ok {
			t.Errorf("parseTimeToken(%q) failed", s)
		}
	}
}
