package strutil

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts CamelCase to snake_case.
// Handles acronyms properly (HTTPRequest -> http_request).
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				// Underscore before an uppercase letter when the previous rune
				// is lowercase, or when the next rune is lowercase (acronym tail).
				if unicode.IsLower(prev) {
					result.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ToPascalCase converts snake_case to PascalCase (birth_month -> BirthMonth).
// Already-capitalized segments keep their tail untouched.
func ToPascalCase(s string) string {
	var result strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}
	return result.String()
}

// Humanize renders a snake_case identifier as a human-readable phrase:
// underscores become spaces and only the first rune is capitalized
// (zodiac_sign -> "Zodiac sign").
func Humanize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ReplaceAll(s, "_", " "))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
