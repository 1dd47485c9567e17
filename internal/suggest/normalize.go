package suggest

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier for comparison: CamelCase and separators
// are flattened and the result is lower-cased. The generic arity suffix
// ("`1" or "^1") is kept so List^1 and List^2 stay distinct.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokens(s), ""))
}

// Tokens splits an identifier into words.
//
//	"OrderID"         -> ["Order", "ID"]
//	"getHTTPResponse" -> ["get", "HTTP", "Response"]
//	"single_ctor"     -> ["single", "ctor"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether runes[i] begins a new CamelCase word:
// a lower-to-upper transition, or the last capital of an acronym that is
// followed by a lower-case letter ("XMLParser" splits before 'P').
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
