package export

import (
	"strings"
	"unicode"
)

// toKebabCase converts PascalCase to kebab-case.
// Handles acronyms: BumpDeepID -> bump-deep-id, GetHTTPURL -> get-http-url
func toKebabCase(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsUpper(r) {
			acronymEnd := i + 1
			for acronymEnd < len(runes) && unicode.IsUpper(runes[acronymEnd]) {
				acronymEnd++
			}

			if acronymEnd > i+1 {
				// Last uppercase before lowercase starts next word, not part of acronym
				if acronymEnd < len(runes) && unicode.IsLower(runes[acronymEnd]) {
					acronymEnd--
				}
			}

			if i > 0 {
				result.WriteByte('-')
			}

			for j := i; j < acronymEnd; j++ {
				result.WriteRune(unicode.ToLower(runes[j]))
			}
			i = acronymEnd - 1
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// splitQualified splits "namespace#name". A bare name returns an empty
// namespace.
func splitQualified(name string) (namespace, fn string) {
	ns, fn, found := strings.Cut(name, "#")
	if found {
		return ns, fn
	}
	return "", name
}
