package sanitizer

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitize cleans user-submitted text so it is safe to embed in markup
// contexts: the five HTML-significant characters are escaped to entity form,
// NUL and other control characters are dropped (tab and line breaks are
// kept), surrounding whitespace is trimmed and the result is cut to
// maxLength runes.
//
// The length cut runs AFTER escaping, so it operates on the entity-expanded
// text. Sanitize is not idempotent: escaping an already escaped string
// double-escapes the ampersands.
func Sanitize(input string, maxLength int) string {
	escaped := escaper.Replace(input)

	var b strings.Builder
	b.Grow(len(escaped))
	for _, r := range escaped {
		if isControl(r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.TrimSpace(b.String())
	if maxLength < 0 {
		return cleaned
	}
	runes := []rune(cleaned)
	if len(runes) <= maxLength {
		return cleaned
	}
	return string(runes[:maxLength])
}

func isControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 0x20 || r == 0x7F
}
