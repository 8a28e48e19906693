// Package normalize implements the locale-aware lowercase folding
// contract spec'd for the autocomplete core: normalize(raw, locale) ->
// nkey. It is the Go-native replacement for the original C source's
// ICU-backed utf8_tolower, built on golang.org/x/text/cases instead of
// a hand-rolled ASCII fold so that locale tailorings (Turkish dotless
// i, German eszett expansion) behave the same way a real ICU-based
// service would.
package normalize

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize converts raw to its locale-aware lowercase form. An empty
// locale means the root locale (no tailoring); locale values follow
// BCP 47 (e.g. "en_US", "de", "tr"). Underscore-separated locale
// strings (the C-style convention used by the CLI's -l flag and the
// HTTP `locale` query param) are accepted alongside BCP 47 hyphens.
func Normalize(raw string, locale string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("normalize: invalid UTF-8 input")
	}

	tag := language.Und
	if locale != "" {
		parsed, err := language.Parse(bcp47(locale))
		if err != nil {
			return "", fmt.Errorf("normalize: invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	caser := cases.Lower(tag)
	return caser.String(raw), nil
}

// bcp47 rewrites underscore locale separators ("en_US") to the
// hyphenated BCP 47 form ("en-US") that golang.org/x/text/language
// expects.
func bcp47(locale string) string {
	out := []byte(locale)
	for i, b := range out {
		if b == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}
