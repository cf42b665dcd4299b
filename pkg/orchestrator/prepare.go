package orchestrator

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-printlabel/pkg/country"
	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/pricing"
)

// PrepareOption customises PrepareTemplateData.
type PrepareOption func(*prepareConfig)

type prepareConfig struct {
	template *model.PrintTemplate
	decimal  pricing.FormatFunc
	clock    func() time.Time
	locale   string
}

// WithPrintTemplate merges the caption fields of the selection's print
// template. Without it the captions stay empty.
func WithPrintTemplate(pt *model.PrintTemplate) PrepareOption {
	return func(cfg *prepareConfig) {
		cfg.template = pt
	}
}

// WithDecimalFunc fills price_decimal and price_sale_decimal.
func WithDecimalFunc(fn pricing.FormatFunc) PrepareOption {
	return func(cfg *prepareConfig) {
		cfg.decimal = fn
	}
}

// WithClock overrides the time source used for print_date.
func WithClock(clock func() time.Time) PrepareOption {
	return func(cfg *prepareConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithLocale sets the locale print_date is written in. It wins over the
// print template's locale.
func WithLocale(locale string) PrepareOption {
	return func(cfg *prepareConfig) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

// PrepareTemplateData adapts a print selection into renderer input. Missing
// sub-records yield empty strings, never a failure. formatPrice renders both
// the original and the sale amount; nil falls back to the default pricing
// formatter.
func PrepareTemplateData(selection *model.PrintSelection, formatPrice pricing.FormatFunc, opts ...PrepareOption) model.TemplateData {
	cfg := prepareConfig{clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if formatPrice == nil {
		formatPrice = pricing.NewFormatter().FormatFunc()
	}

	var (
		product   model.Product
		origin    model.Country
		salePrice *float64
	)
	if selection != nil {
		if selection.Product != nil {
			product = *selection.Product
		}
		if selection.Country != nil {
			origin = *selection.Country
		}
		salePrice = selection.SalePrice
	}

	countryName := strings.TrimSpace(origin.Name)
	data := model.TemplateData{
		ProductName:        strings.TrimSpace(product.Name),
		ProductCode:        strings.TrimSpace(product.Code),
		Price:              formatAmount(formatPrice, product.Price, countryName),
		PriceSale:          formatAmount(formatPrice, salePrice, countryName),
		DiscountPercentage: pricing.Discount(product.Price, salePrice),
		CountryName:        countryName,
		CountryCode:        country.Flag(origin.Code),
		UnitPriceInfo:      strings.TrimSpace(product.UnitPriceInfo),
		ProductInfo:        strings.TrimSpace(product.ProductInfo),
	}

	if cfg.decimal != nil {
		data.PriceDecimal = formatAmount(cfg.decimal, product.Price, countryName)
		data.PriceSaleDecimal = formatAmount(cfg.decimal, salePrice, countryName)
	}

	locale := cfg.locale
	if pt := cfg.template; pt != nil {
		data.PTBrand = strings.TrimSpace(pt.Brand)
		data.PTOriginCountry = strings.TrimSpace(pt.OriginCountry)
		data.PTProductCode = strings.TrimSpace(pt.ProductCode)
		data.PTOriginalPrice = strings.TrimSpace(pt.OriginalPrice)
		if locale == "" {
			locale = strings.TrimSpace(pt.Locale)
		}
	}
	data.PrintDate = FormatPrintDate(cfg.clock(), locale)

	return data
}

func formatAmount(fn pricing.FormatFunc, amount *float64, countryName string) string {
	if amount == nil || fn == nil {
		return ""
	}
	return fn(*amount, countryName)
}

// FormatPrintDate writes t as a short numeric date for locale. Unknown or
// empty locales use the Vietnamese day/month/year order.
func FormatPrintDate(t time.Time, locale string) string {
	return t.Format(dateLayout(locale))
}

func dateLayout(locale string) string {
	const dayFirst = "02/01/2006"

	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return dayFirst
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, _ := tag.Region(); region.String() == "US" {
			return "01/02/2006"
		}
		return dayFirst
	case "ja", "ko", "zh":
		return "2006/01/02"
	case "de":
		return "02.01.2006"
	default:
		return dayFirst
	}
}
