package labels

import (
	"strconv"

	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/pricing"
	"github.com/goliatone/go-printlabel/pkg/sanitize"
)

// labelView is the template context. Embedded TemplateData fields flatten into
// the context under their json names. Every number is pre-formatted so the
// templates never print floats.
type labelView struct {
	model.TemplateData

	Format     string `json:"format"`
	Background string `json:"background"`
	StyleVars  string `json:"style_vars"`
	BucketCSS  string `json:"bucket_css"`
	PrintCSS   string `json:"print_css"`

	Sale        priceView `json:"sale"`
	Original    priceView `json:"original"`
	HasOriginal bool      `json:"has_original"`
	OriginalTop string    `json:"original_top"`

	UnitPriceMarkup   string `json:"unit_price_markup"`
	ProductInfoMarkup string `json:"product_info_markup"`

	Cells []cellView `json:"cells,omitempty"`
}

type priceView struct {
	Number  string `json:"number"`
	Suffix  string `json:"suffix"`
	Decimal string `json:"decimal"`
	Class   string `json:"class"`
}

type cellView struct {
	Index      string `json:"index"`
	Top        string `json:"top"`
	NameTop    string `json:"name_top"`
	PriceTop   string `json:"price_top"`
	InfoTop    string `json:"info_top"`
	Left       string `json:"left"`
	BrandLeft  string `json:"brand_left"`
	OriginLeft string `json:"origin_left"`
}

func (r *Renderer) buildView(data model.TemplateData) labelView {
	view := labelView{
		TemplateData:      data,
		Format:            string(r.layout.format),
		Background:        r.background,
		StyleVars:         r.styleVars,
		BucketCSS:         r.bucketCSS,
		PrintCSS:          printCSS,
		UnitPriceMarkup:   sanitize.Markup(data.UnitPriceInfo),
		ProductInfoMarkup: sanitize.Markup(data.ProductInfo),
	}

	salePrice, saleDecimal := data.PriceSale, data.PriceSaleDecimal
	if !data.HasSalePrice() {
		// Without a distinct sale price the regular price takes the headline
		// slot and no struck-through line is shown.
		salePrice, saleDecimal = data.Price, data.PriceDecimal
	} else {
		view.HasOriginal = data.Price != ""
	}

	view.Sale = newPriceView(salePrice, saleDecimal, SelectBucket(r.sale, salePrice))
	if view.HasOriginal {
		bucket := SelectBucket(r.original, data.Price)
		view.Original = newPriceView(data.Price, data.PriceDecimal, bucket)
		view.OriginalTop = r.originalTop(bucket)
	}

	if r.layout.sheet {
		view.Cells = sheetCells()
	}
	return view
}

func newPriceView(price, decimal string, bucket Bucket) priceView {
	number, suffix := pricing.SplitPrice(price)
	return priceView{
		Number:  number,
		Suffix:  suffix,
		Decimal: decimal,
		Class:   bucket.Class,
	}
}

func (r *Renderer) originalTop(bucket Bucket) string {
	if offset, ok := OffsetFor(r.layout.format); ok && bucket.Rem > 0 {
		return rem(offset.Top(bucket.Rem))
	}
	if r.layout.originalTop > 0 {
		return rem(r.layout.originalTop)
	}
	return ""
}

func sheetCells() []cellView {
	cells := make([]cellView, 0, I4Cells)
	for _, top := range i4RowTops {
		for _, col := range i4Columns {
			cells = append(cells, cellView{
				Index:      strconv.Itoa(len(cells) + 1),
				Top:        rem(top),
				NameTop:    rem(top + 2.25),
				PriceTop:   rem(top + 4.75),
				InfoTop:    rem(top + 8),
				Left:       rem(col.Left),
				BrandLeft:  rem(col.Brand),
				OriginLeft: rem(col.Origin),
			})
		}
	}
	return cells
}
