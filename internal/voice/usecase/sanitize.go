package usecase

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexByte(text, '}')
	if end == -1 || end < start {
		return strings.TrimSpace(text[start:])
	}
	return strings.TrimSpace(text[start : end+1])
}
