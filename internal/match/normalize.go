package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for key-indifferent lookups.
// The normalization pipeline:
// 1. Tokenize CamelCase and split on separators (_, - and spaces).
// 2. Case-fold every token to lower.
// 3. Join the tokens without separators.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["xml", "parser"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

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

		if i > 0 && startsToken(runes, i) {
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

// startsToken reports whether a new token begins at runes[i]:
// on a lower-to-upper transition ("orderID") or at the last capital of an
// acronym that is followed by a lowercase letter ("XMLParser").
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
