package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce   sync.Once
	markupPolicy *bluemonday.Policy
	strictPolicy *bluemonday.Policy
)

func initPolicies() {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Label free text may carry inline emphasis and line breaks, nothing
		// that can move out of its absolutely positioned box.
		markupPolicy = bluemonday.StrictPolicy()
		markupPolicy.AllowElements("br", "strong", "b", "em", "i", "span", "sup", "sub", "small")
		markupPolicy.AllowAttrs("class").OnElements("span")
	})
}

// Markup keeps inline formatting tags in free-text label fields and strips
// everything else. The result is safe to emit unescaped.
func Markup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	initPolicies()
	return strings.TrimSpace(markupPolicy.Sanitize(trimmed))
}

// Text strips all markup. The result is HTML-escaped text.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(trimmed))
}
