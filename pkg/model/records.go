package model

// Product is the upstream product record.
type Product struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Code          string   `json:"code" yaml:"code"`
	Price         *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	UnitPriceInfo string   `json:"unit_price_info,omitempty" yaml:"unit_price_info,omitempty"`
	ProductInfo   string   `json:"product_info,omitempty" yaml:"product_info,omitempty"`
}

// Country is the upstream country record. Code is an ISO 3166-1 alpha-2 code.
type Country struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// PrintSelection queues one product, at one sale price, for one country.
type PrintSelection struct {
	ID              string   `json:"id" yaml:"id"`
	Product         *Product `json:"product,omitempty" yaml:"product,omitempty"`
	Country         *Country `json:"country,omitempty" yaml:"country,omitempty"`
	SalePrice       *float64 `json:"sale_price,omitempty" yaml:"sale_price,omitempty"`
	PrintTemplateID string   `json:"print_template_id,omitempty" yaml:"print_template_id,omitempty"`
}

// PrintTemplate is the per-country caption configuration for a label format.
type PrintTemplate struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Format        string `json:"format" yaml:"format"`
	CountryID     string `json:"country_id,omitempty" yaml:"country_id,omitempty"`
	Locale        string `json:"locale,omitempty" yaml:"locale,omitempty"`
	Brand         string `json:"pt_brand" yaml:"pt_brand"`
	OriginCountry string `json:"pt_origin_country" yaml:"pt_origin_country"`
	ProductCode   string `json:"pt_product_code" yaml:"pt_product_code"`
	OriginalPrice string `json:"pt_original_price" yaml:"pt_original_price"`
}

// Amount returns a pointer to v. Handy for building records in code and tests.
func Amount(v float64) *float64 {
	return &v
}
