package llm

import (
	"errors"
	"strings"
)

// ErrNoJSON means a model response carried no recognizable JSON object.
var ErrNoJSON = errors.New("no JSON object in model response")

// ExtractJSON recovers the JSON object from a chat response. Models
// wrap payloads in markdown fences or chat around them; fences are
// stripped first, then the span from the first '{' to the last '}'
// is taken.
func ExtractJSON(content string) ([]byte, error) {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return nil, ErrNoJSON
	}
	return []byte(s[start : end+1]), nil
}
