package pricing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// trailingSuffix captures everything up to the last digit, then the trailing
// non-digit run (currency symbol or unit).
var trailingSuffix = regexp.MustCompile(`^(.*\d)(\D*)$`)

// SplitPrice separates a formatted price into its numeric run and trailing
// suffix: "1.234.567 ₫" → ("1.234.567", "₫"). A string without digits is
// returned whole as the numeric part.
func SplitPrice(price string) (number, suffix string) {
	price = strings.TrimSpace(price)
	if price == "" {
		return "", ""
	}
	m := trailingSuffix.FindStringSubmatch(price)
	if m == nil {
		return price, ""
	}
	return m[1], strings.TrimSpace(m[2])
}

// RuneLen is the character length used to pick font-size buckets.
func RuneLen(price string) int {
	return utf8.RuneCountInString(price)
}
