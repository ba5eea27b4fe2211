package ocr

import (
	"strings"
	"unicode"
)

// NormalizeText cleans decoder output: control characters go, runs of
// spaces and tabs collapse, and blank-line runs shrink to one. Line
// structure itself is preserved because the parsers downstream are
// line-oriented.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = cleanLine(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	// strip trailing blank
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func cleanLine(line string) string {
	var b strings.Builder
	space := false
	for _, r := range line {
		if r == '\t' || r == ' ' {
			space = true
			continue
		}
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
