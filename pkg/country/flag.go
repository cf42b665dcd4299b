// Package country derives display glyphs from ISO 3166-1 alpha-2 codes.
package country

import "strings"

// regionalIndicatorOffset maps 'A'..'Z' onto U+1F1E6..U+1F1FF.
const regionalIndicatorOffset = 127397

// Globe is returned for any code that cannot be turned into a flag.
const Globe = "🌐"

// Flag converts a two-letter country code into its regional-indicator flag,
// e.g. "VN" → "🇻🇳". Codes are case-insensitive and trimmed; anything that is
// not exactly two ASCII letters yields Globe.
func Flag(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return Globe
	}

	var b strings.Builder
	b.Grow(8)
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return Globe
		}
		b.WriteRune(rune(c) + regionalIndicatorOffset)
	}
	return b.String()
}

// FlagOf accepts loosely typed values, such as fields decoded from arbitrary
// JSON. Strings go through Flag; every other value, nil included, yields Globe.
func FlagOf(v any) string {
	switch code := v.(type) {
	case string:
		return Flag(code)
	case *string:
		if code == nil {
			return Globe
		}
		return Flag(*code)
	default:
		return Globe
	}
}
