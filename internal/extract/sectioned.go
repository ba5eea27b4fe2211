package extract

import (
	"strings"
)

// sectionHeaders are the exact header lines (lowercased, trimmed) that
// activate the sectioned strategy. "amounts" is a recognized group
// header but carries no value of its own.
var sectionHeaders = map[string]struct{}{
	"date":           {},
	"time":           {},
	"payment method": {},
	"amounts":        {},
	"subtotal":       {},
	"tax":            {},
	"total":          {},
	"items":          {},
}

// sectionedStrategy parses export-style text where single-word headers
// introduce each field and values sit on the following lines.
type sectionedStrategy struct{}

func (sectionedStrategy) Name() string { return MethodSectioned }

func (sectionedStrategy) TryParse(text string) (*StructuredRecord, bool) {
	lines := strings.Split(text, "\n")

	nonEmpty := 0
	activated := false
	for _, line := range lines {
		t := strings.ToLower(strings.TrimSpace(line))
		if t != "" {
			nonEmpty++
		}
		if _, ok := sectionHeaders[t]; ok {
			activated = true
		}
	}
	if nonEmpty < 3 || !activated {
		return nil, false
	}

	rec := &StructuredRecord{}
	section := ""
	found := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if _, ok := sectionHeaders[lower]; ok {
			section = lower
			continue
		}

		switch section {
		case "date":
			if line != "-" && rec.Date == "" {
				rec.Date = line
				found = true
			}
		case "time":
			if line != "-" && rec.Time == "" {
				rec.Time = line
				found = true
			}
		case "payment method":
			if line != "-" && rec.PaymentMethod == "" {
				rec.PaymentMethod = line
			}
		case "subtotal":
			if strings.HasPrefix(line, "$") {
				if v := parseMoneyToken(line); v != nil {
					rec.Subtotal = v
					found = true
				}
			}
		case "tax":
			if strings.HasPrefix(line, "$") {
				if v := parseMoneyToken(line); v != nil {
					rec.Tax = v
					found = true
				}
			}
		case "total":
			if strings.HasPrefix(line, "$") {
				if v := parseMoneyToken(line); v != nil {
					rec.Total = v
					found = true
				}
			}
		case "items":
			// An item is a name line directly followed by a price line.
			if strings.HasPrefix(line, "$") || i+1 >= len(lines) {
				continue
			}
			next := strings.TrimSpace(lines[i+1])
			if !strings.HasPrefix(next, "$") {
				continue
			}
			if v := parseMoneyToken(next); v != nil && v.IsPositive() {
				rec.Items = append(rec.Items, LineItem{Name: line, Price: *v})
				found = true
				i++
			}
		}
	}

	if !found {
		return nil, false
	}
	rec.Method = MethodSectioned
	rec.Confidence = Score(rec)
	return rec, true
}
