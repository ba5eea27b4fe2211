package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// itemSkipKeywords mark label lines that look like items on the
// dollar-split pass but are really summary rows or column headers.
var itemSkipKeywords = []string{"SUBTOTAL", "TAX", "TOTAL", "SAVED", "ITEM", "PRICE"}

// itemNoiseWords disqualify narrative captures that grabbed sentence
// fragments instead of product names.
var itemNoiseWords = []string{"total", "checkout", "shopper", "headed", "collecting", "stopped", "target", "superstore"}

// narrativeItemPatterns run in priority order: the tight purchase-verb
// forms first, the loose preposition forms last. All of them capture
// (name, price).
var narrativeItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:picked up|grabbed)\s+a\s+([^,]+?)\s+for\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)\ba\s+([^,]+?)\s+costing\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)\ba\s+([^,]+?)\s+priced\s+at\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)(\d+\s+x\s+[^,]+?)\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)([A-Za-z][^,]*?)\s+for\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)([A-Za-z][^,]*?)\s+costing\s+\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)([A-Za-z][^,]*?)\s+priced\s+at\s+\$?(\d+\.?\d*)`),
}

var (
	reArticlePrefix = regexp.MustCompile(`(?i)^(?:a|an|the)\s+`)
	reMeasurePrefix = regexp.MustCompile(`(?i)^(?:loaf|loaves|bottle|bag|box|carton|jar|can|cup|gallon|dozen|pack|pair)s?\s+of\s+`)
	reDanglingVerb  = regexp.MustCompile(`(?i)\s+(?:for|costing|priced(?:\s+at)?)\s*$`)
)

// priceEpsilon is the gap under which two item prices count as equal
// for deduplication.
var priceEpsilon = decimal.NewFromFloat(0.01)

// scanItems is the dollar-split pass over receipt-shaped lines: one
// item name, one price, separated by a single currency symbol.
func scanItems(lines []string) []LineItem {
	var items []LineItem
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 5 || !strings.Contains(line, "$") {
			continue
		}
		parts := strings.Split(line, "$")
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" || hasSkipKeyword(name) {
			continue
		}
		price := parseMoneyToken(parts[1])
		if price == nil || !price.IsPositive() {
			continue
		}
		items = append(items, LineItem{Name: name, Price: *price})
	}
	return items
}

func hasSkipKeyword(name string) bool {
	upper := strings.ToUpper(name)
	for _, kw := range itemSkipKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// narrativeItems extracts purchases from prose, cleans the captured
// names and drops duplicates the overlapping patterns produce.
func narrativeItems(text string) []LineItem {
	var items []LineItem
	for _, pat := range narrativeItemPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			name := cleanItemName(m[1])
			price := parseMoneyToken(m[2])
			if price == nil || !price.IsPositive() {
				continue
			}
			if len(name) <= 2 || len(name) >= 100 {
				continue
			}
			if hasNoiseWord(name) {
				continue
			}
			items = append(items, LineItem{Name: name, Price: *price})
		}
	}
	return dedupeItems(items)
}

// cleanItemName strips leading articles and quantity phrasing along
// with any dangling purchase verb the lazy captures left behind.
func cleanItemName(name string) string {
	name = strings.TrimSpace(name)
	name = reArticlePrefix.ReplaceAllString(name, "")
	name = reMeasurePrefix.ReplaceAllString(name, "")
	name = reDanglingVerb.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func hasNoiseWord(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range itemNoiseWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// dedupeItems keeps the first of any duplicate pair. Two items are
// duplicates when their prices are within priceEpsilon and the names
// share a word longer than three characters.
func dedupeItems(items []LineItem) []LineItem {
	var out []LineItem
	for _, it := range items {
		dup := false
		for _, kept := range out {
			if sameItem(it, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return out
}

func sameItem(a, b LineItem) bool {
	if a.Price.Sub(b.Price).Abs().GreaterThanOrEqual(priceEpsilon) {
		return false
	}
	bWords := strings.Fields(strings.ToLower(b.Name))
	for _, w := range strings.Fields(strings.ToLower(a.Name)) {
		if len(w) <= 3 {
			continue
		}
		for _, bw := range bWords {
			if w == bw {
				return true
			}
		}
	}
	return false
}

func sumItemPrices(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	return sum
}
