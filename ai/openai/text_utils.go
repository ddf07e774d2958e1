package openai

import (
	"strings"
	"unicode"
)

// scrubString normalizes transcript text before prompting. Control characters
// are dropped and surrounding whitespace is trimmed. Punctuation is kept
// because extracted quotes must match the transcript verbatim.
func scrubString(s string) string {
	s = strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
