package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxStoreNameLen caps store names everywhere a strategy produces one.
const maxStoreNameLen = 100

// storeSuffixes are retail keywords that mark a line as the store
// header. Longer spellings come first so SUPERSTORE is not eaten by
// the STORE match.
var storeSuffixes = []string{"SUPERCENTER", "SUPERSTORE", "SUPERMARKET", "MARKET", "CENTER", "MALL", "STORE"}

var storeBrands = []string{"WALMART", "TARGET", "AMAZON", "COSTCO", "SAFEWAY", "KROGER", "WHOLE FOODS", "CVS", "WALGREENS"}

var (
	reISODate   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	reSlashDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	reMonthDate = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)
	reTime      = regexp.MustCompile(`\b(\d{1,2}:\d{2}(?::\d{2})?)\s*((?i:[ap]m))?\b`)
	reAmountNum = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
)

var monthNums = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// scanStoreName walks lines looking for a retail suffix keyword or a
// known brand. The matched suffix is stripped so "STORE: WALMART"
// yields "WALMART".
func scanStoreName(lines []string) string {
	for _, line := range lines {
		upper := strings.ToUpper(strings.TrimSpace(line))
		if upper == "" || len(upper) >= 50 {
			continue
		}
		for _, suffix := range storeSuffixes {
			if !strings.Contains(upper, suffix) {
				continue
			}
			name := strings.Trim(strings.ReplaceAll(upper, suffix, ""), " :-#")
			if name == "" {
				name = upper
			}
			return truncateStoreName(name)
		}
		for _, brand := range storeBrands {
			if strings.Contains(upper, brand) {
				return truncateStoreName(brand)
			}
		}
	}
	return ""
}

func truncateStoreName(name string) string {
	if len(name) > maxStoreNameLen {
		return name[:maxStoreNameLen]
	}
	return name
}

// scanDate finds the first date-looking token and returns it in
// YYYY-MM-DD form. Slash dates are read month-first.
func scanDate(text string) string {
	if m := reISODate.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := reSlashDate.FindStringSubmatch(text); m != nil {
		mo, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], mo, day)
	}
	if m := reMonthDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], monthNums[strings.ToLower(m[1])], day)
	}
	return ""
}

// scanTime finds the first clock-looking token, normalizing any AM/PM
// marker to an uppercase suffix separated by one space.
func scanTime(text string) string {
	m := reTime.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return m[1] + " " + strings.ToUpper(m[2])
	}
	return m[1]
}

// scanCashier picks the remainder of the first CASHIER: line.
func scanCashier(lines []string) string {
	for _, line := range lines {
		upper := strings.ToUpper(line)
		idx := strings.Index(upper, "CASHIER")
		if idx < 0 {
			continue
		}
		rest := line[idx+len("CASHIER"):]
		return strings.Trim(rest, " :\t")
	}
	return ""
}

// scanAmounts pulls subtotal, tax and total from labeled lines that
// carry a currency symbol. The first labeled line per field wins, so a
// later "TOTAL SAVINGS" line cannot clobber the grand total. A TOTAL
// line is skipped when it also says SUBTOTAL, so the subtotal line
// cannot shadow the grand total either.
func scanAmounts(lines []string) (subtotal, tax, total *decimal.Decimal) {
	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.ContainsAny(upper, "$£€") {
			continue
		}
		switch {
		case strings.Contains(upper, "SUBTOTAL"):
			if subtotal == nil {
				subtotal = moneyAfterSymbol(line)
			}
		case strings.Contains(upper, "TAX"):
			if tax == nil {
				tax = moneyAfterSymbol(line)
			}
		case strings.Contains(upper, "TOTAL"):
			if total == nil {
				total = moneyAfterSymbol(line)
			}
		}
	}
	return subtotal, tax, total
}

// moneyAfterSymbol parses the first number following a currency symbol.
func moneyAfterSymbol(line string) *decimal.Decimal {
	idx := strings.IndexAny(line, "$£€")
	if idx < 0 {
		return nil
	}
	return parseMoneyToken(line[idx:])
}

// parseMoneyToken parses the first number in s, tolerating thousands
// separators and a leading currency symbol.
func parseMoneyToken(s string) *decimal.Decimal {
	tok := reAmountNum.FindString(s)
	if tok == "" {
		return nil
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(tok, ",", ""))
	if err != nil {
		return nil
	}
	return &v
}

// dateLayouts and timeLayouts are the spellings the normalizer accepts,
// tried in order with the first success winning.
var dateLayouts = []string{
	"2006-01-02",
	"01-02-2006",
	"02-01-2006",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

func parseDateToken(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTimeToken(s string) (time.Time, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
