package question

import (
	"strings"
	"unicode"
)

// CleanText normalizes display text pulled from raw records: literal
// two-character `\n` escapes become a space, real newlines become a
// space, runs of whitespace collapse to one space, and the result is
// trimmed. Applied identically to question text, every option, and the
// explanation. Idempotent.
func CleanText(text string) string {
	if text == "" {
		return text
	}
	s := strings.ReplaceAll(text, `\n`, " ")

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
