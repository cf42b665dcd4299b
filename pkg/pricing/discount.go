package pricing

import (
	"fmt"
	"math"
)

// Discount returns the percent-off caption for an original and a sale amount,
// e.g. 100000 → 75000 gives "-25%". It is empty when either amount is missing
// or the original is zero. Halves round up, so -12.5 becomes -12. A sale price
// above the original reads as a markup ("+12%").
func Discount(original, sale *float64) string {
	if original == nil || sale == nil || *original == 0 {
		return ""
	}
	pct := int64(math.Floor((*original-*sale) / *original * 100 + 0.5))
	if pct < 0 {
		return fmt.Sprintf("+%d%%", -pct)
	}
	return fmt.Sprintf("-%d%%", pct)
}
