package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-printlabel/components/formats"
	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/render"
)

// Label is one interactively collected record.
type Label struct {
	Format    render.Format
	Selection model.PrintSelection
	Template  model.PrintTemplate
}

// Collector walks an operator through the fields a label needs.
type Collector struct {
	driver Driver
	// Defaults seed the caption prompts.
	Defaults model.PrintTemplate
}

// NewCollector binds a Collector to driver.
func NewCollector(driver Driver) *Collector {
	return &Collector{driver: driver}
}

// CollectAll keeps collecting labels until the operator declines another.
// All labels share the first label's format.
func (c *Collector) CollectAll(ctx context.Context) ([]Label, error) {
	first, err := c.Collect(ctx, "")
	if err != nil {
		return nil, err
	}
	out := []Label{first}
	for {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add another label?"})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
		next, err := c.Collect(ctx, first.Format)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}
}

// Collect prompts for one label. When format is empty the operator picks it.
func (c *Collector) Collect(ctx context.Context, format render.Format) (Label, error) {
	if c == nil || c.driver == nil {
		return Label{}, ErrNoDriver
	}

	if format == "" {
		picked, err := c.pickFormat(ctx)
		if err != nil {
			return Label{}, err
		}
		format = picked
	}

	var (
		label = Label{Format: format}
		p     = model.Product{}
		ctry  = model.Country{}
		tpl   = c.Defaults
		err   error
	)
	tpl.Format = string(format)

	steps := []struct {
		cfg  InputConfig
		dest *string
	}{
		{InputConfig{Message: "Product name", Validator: required}, &p.Name},
		{InputConfig{Message: "Product code"}, &p.Code},
		{InputConfig{Message: "Country name", Default: "Việt Nam"}, &ctry.Name},
		{InputConfig{Message: "Country code (ISO alpha-2)", Default: "VN", Validator: countryCode}, &ctry.Code},
		{InputConfig{Message: "Brand caption", Default: tpl.Brand}, &tpl.Brand},
		{InputConfig{Message: "Origin caption", Default: tpl.OriginCountry}, &tpl.OriginCountry},
		{InputConfig{Message: "Product code caption", Default: tpl.ProductCode}, &tpl.ProductCode},
		{InputConfig{Message: "Original price caption", Default: tpl.OriginalPrice}, &tpl.OriginalPrice},
	}
	for _, step := range steps {
		if *step.dest, err = c.driver.Input(ctx, step.cfg); err != nil {
			return Label{}, err
		}
	}

	price, err := c.amount(ctx, "Regular price", true)
	if err != nil {
		return Label{}, err
	}
	p.Price = price

	sale, err := c.amount(ctx, "Sale price (blank for none)", false)
	if err != nil {
		return Label{}, err
	}

	if format == render.FormatV1 || format == render.FormatV3 {
		if p.UnitPriceInfo, err = c.driver.Input(ctx, InputConfig{Message: "Unit price info"}); err != nil {
			return Label{}, err
		}
		if p.ProductInfo, err = c.driver.TextArea(ctx, TextAreaConfig{Message: "Product info"}); err != nil {
			return Label{}, err
		}
	}

	label.Selection = model.PrintSelection{
		Product:   &p,
		Country:   &ctry,
		SalePrice: sale,
	}
	label.Template = tpl
	return label, nil
}

func (c *Collector) pickFormat(ctx context.Context) (render.Format, error) {
	entries, err := formats.DefaultEntries()
	if err != nil {
		return "", fmt.Errorf("prompt: load formats: %w", err)
	}
	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = entry.Label
	}

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:  "Label format",
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(entries) {
		return render.DefaultFormat, nil
	}
	return render.ParseFormat(entries[idx].Value), nil
}

func (c *Collector) amount(ctx context.Context, message string, mandatory bool) (*float64, error) {
	validate := optionalAmount
	if mandatory {
		validate = requiredAmount
	}
	raw, err := c.driver.Input(ctx, InputConfig{Message: message, Validator: validate})
	if err != nil {
		return nil, err
	}
	v, ok, err := ParseAmount(raw)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// ParseAmount reads an operator-typed price. Spaces, underscores and
// dot/comma thousands separators are ignored when the input has no fraction,
// so "100.000" and "100 000" both mean 100000. Blank input reports ok=false.
func ParseAmount(raw string) (float64, bool, error) {
	s := strings.NewReplacer(" ", "", "_", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, false, nil
	}
	s = normaliseSeparators(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("prompt: %q is not a price", raw)
	}
	if v < 0 {
		return 0, false, fmt.Errorf("prompt: price %q is negative", raw)
	}
	return v, true, nil
}

// normaliseSeparators treats a separator followed by exactly three digits as
// grouping and the last other separator as the decimal point.
func normaliseSeparators(s string) string {
	last := strings.LastIndexAny(s, ".,")
	if last < 0 {
		return s
	}
	if len(s)-last-1 == 3 {
		return strings.NewReplacer(".", "", ",", "").Replace(s)
	}
	whole := strings.NewReplacer(".", "", ",", "").Replace(s[:last])
	return whole + "." + s[last+1:]
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}

func requiredAmount(s string) error {
	_, ok, err := ParseAmount(s)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("a price is required")
	}
	return nil
}

func optionalAmount(s string) error {
	_, _, err := ParseAmount(s)
	return err
}

func countryCode(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) != 2 {
		return fmt.Errorf("use a two-letter code such as VN or JP")
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return fmt.Errorf("use a two-letter code such as VN or JP")
		}
	}
	return nil
}
