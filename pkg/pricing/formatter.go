package pricing

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FormatFunc renders an amount for the named country. It is the seam
// PrepareTemplateData uses for both the original and the sale price.
type FormatFunc func(amount float64, countryName string) string

// Rule describes how one country writes prices.
type Rule struct {
	// Names are matched case- and accent-insensitively against the country
	// name passed to Format.
	Names       []string
	// Exact names only match with their accents intact. Short Vietnamese
	// names go here when stripping would collide with an ISO code or a
	// single letter ("Mỹ" and "my", "Ý" and "y").
	Exact       []string
	Locale      language.Tag
	Symbol      string
	SymbolAfter bool
	// Decimals is the number of fraction digits printed by Decimal. The whole
	// part returned by Format never carries a fraction.
	Decimals int
}

// DefaultRules covers the markets the label sheets ship to. The first rule is
// also the fallback for unknown countries.
func DefaultRules() []Rule {
	return []Rule{
		{Names: []string{"vietnam", "viet nam", "vn"}, Locale: language.Vietnamese, Symbol: "₫", SymbolAfter: true},
		{Names: []string{"japan", "nhat ban", "jp"}, Locale: language.Japanese, Symbol: "¥"},
		{Names: []string{"korea", "south korea", "han quoc", "kr"}, Locale: language.Korean, Symbol: "₩"},
		{Names: []string{"thailand", "thai lan", "th"}, Locale: language.Thai, Symbol: "฿", Decimals: 2},
		{Names: []string{"united states", "usa", "us", "hoa ky"}, Exact: []string{"mỹ"}, Locale: language.AmericanEnglish, Symbol: "$", Decimals: 2},
		{Names: []string{"france", "phap", "fr"}, Locale: language.French, Symbol: "€", SymbolAfter: true, Decimals: 2},
		{Names: []string{"germany", "đức", "duc", "de"}, Locale: language.German, Symbol: "€", SymbolAfter: true, Decimals: 2},
		{Names: []string{"italy", "it"}, Exact: []string{"ý"}, Locale: language.Italian, Symbol: "€", SymbolAfter: true, Decimals: 2},
	}
}

// Formatter formats prices per country using CLDR digit grouping.
type Formatter struct {
	mu       sync.Mutex
	byName   map[string]Rule
	byExact  map[string]Rule
	fallback Rule
	printers map[language.Tag]*message.Printer
}

// NewFormatter builds a Formatter from rules. With no rules DefaultRules is
// used. The first rule doubles as the fallback.
func NewFormatter(rules ...Rule) *Formatter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	f := &Formatter{
		byName:   make(map[string]Rule),
		byExact:  make(map[string]Rule),
		fallback: rules[0],
		printers: make(map[language.Tag]*message.Printer),
	}
	for _, rule := range rules {
		for _, name := range rule.Names {
			key := normalizeName(name)
			if key == "" {
				continue
			}
			if _, exists := f.byName[key]; !exists {
				f.byName[key] = rule
			}
		}
		for _, name := range rule.Exact {
			key := foldName(name)
			if key == "" {
				continue
			}
			if _, exists := f.byExact[key]; !exists {
				f.byExact[key] = rule
			}
		}
	}
	return f
}

// RuleFor returns the rule matching countryName, or the fallback rule.
func (f *Formatter) RuleFor(countryName string) Rule {
	if rule, ok := f.byExact[foldName(countryName)]; ok {
		return rule
	}
	if rule, ok := f.byName[normalizeName(countryName)]; ok {
		return rule
	}
	return f.fallback
}

// Format returns the grouped whole part with the currency symbol, e.g.
// Format(1234567, "Việt Nam") == "1.234.567 ₫".
func (f *Formatter) Format(amount float64, countryName string) string {
	rule := f.RuleFor(countryName)
	whole, _ := splitAmount(amount, rule.Decimals)

	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}
	digits := f.printer(rule.Locale).Sprintf("%d", whole)

	switch {
	case rule.Symbol == "":
		return sign + digits
	case rule.SymbolAfter:
		return sign + digits + " " + rule.Symbol
	default:
		return sign + rule.Symbol + digits
	}
}

// Decimal returns the zero-padded fraction digits for rules with decimals, and
// "" for whole-unit currencies.
func (f *Formatter) Decimal(amount float64, countryName string) string {
	rule := f.RuleFor(countryName)
	if rule.Decimals <= 0 {
		return ""
	}
	_, frac := splitAmount(amount, rule.Decimals)
	return fmt.Sprintf("%0*d", rule.Decimals, frac)
}

// FormatFunc exposes Format as a FormatFunc.
func (f *Formatter) FormatFunc() FormatFunc {
	return f.Format
}

// DecimalFunc exposes Decimal with the FormatFunc signature.
func (f *Formatter) DecimalFunc() FormatFunc {
	return f.Decimal
}

func (f *Formatter) printer(tag language.Tag) *message.Printer {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.printers[tag]; ok {
		return p
	}
	p := message.NewPrinter(tag)
	f.printers[tag] = p
	return p
}

// splitAmount rounds amount to decimals places and returns the signed whole
// part and the absolute fraction digits.
func splitAmount(amount float64, decimals int) (int64, int64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, 0
	}
	if decimals <= 0 {
		return int64(math.Round(amount)), 0
	}
	scale := int64(math.Pow10(decimals))
	scaled := int64(math.Round(math.Abs(amount) * float64(scale)))
	whole, frac := scaled/scale, scaled%scale
	if amount < 0 {
		whole = -whole
	}
	return whole, frac
}

// foldName lowercases and collapses whitespace, keeping accents.
func foldName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(name))), " ")
}

// normalizeName lowercases, trims and strips diacritics so "Việt Nam" and
// "viet nam" match the same rule.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, name)
	if err != nil {
		return name
	}
	return strings.Join(strings.Fields(out), " ")
}
