package model

// TemplateData carries one label's presentation values. Renderers treat it as
// opaque: the only values they derive are the font-size bucket (by rune length
// of Price/PriceSale) and the numeric/suffix split of the two price strings.
type TemplateData struct {
	ProductName string `json:"product_name" yaml:"product_name"`
	ProductCode string `json:"product_code" yaml:"product_code"`

	// Price and PriceSale are localized currency strings such as "1.234.567 ₫".
	Price     string `json:"price" yaml:"price"`
	PriceSale string `json:"price_sale" yaml:"price_sale"`
	// PriceDecimal and PriceSaleDecimal render as superscript after the integer
	// run. Empty means no superscript is emitted.
	PriceDecimal     string `json:"price_decimal,omitempty" yaml:"price_decimal,omitempty"`
	PriceSaleDecimal string `json:"price_sale_decimal,omitempty" yaml:"price_sale_decimal,omitempty"`

	DiscountPercentage string `json:"discount_percentage" yaml:"discount_percentage"`

	CountryName string `json:"country_name" yaml:"country_name"`
	// CountryCode holds the derived flag glyph, not the ISO code.
	CountryCode string `json:"country_code" yaml:"country_code"`

	PrintDate string `json:"print_date" yaml:"print_date"`

	// Caption strings configured on the print-template record.
	PTBrand         string `json:"pt_brand" yaml:"pt_brand"`
	PTOriginCountry string `json:"pt_origin_country" yaml:"pt_origin_country"`
	PTProductCode   string `json:"pt_product_code" yaml:"pt_product_code"`
	PTOriginalPrice string `json:"pt_original_price" yaml:"pt_original_price"`

	UnitPriceInfo string `json:"unit_price_info,omitempty" yaml:"unit_price_info,omitempty"`
	ProductInfo   string `json:"product_info,omitempty" yaml:"product_info,omitempty"`
}

// HasSalePrice reports whether a distinct sale price was supplied.
func (d TemplateData) HasSalePrice() bool {
	return d.PriceSale != ""
}
