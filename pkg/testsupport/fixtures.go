package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-printlabel/pkg/model"
)

// FujiApple returns the reference A4 scenario record: a Japanese apple at
// 75.000 ₫ down from 100.000 ₫.
func FujiApple() pkgmodel.TemplateData {
	return pkgmodel.TemplateData{
		ProductName:        "Táo Fuji",
		ProductCode:        "AP001",
		Price:              "100.000 ₫",
		PriceSale:          "75.000 ₫",
		DiscountPercentage: "-25%",
		CountryName:        "Nhật Bản",
		CountryCode:        "🇯🇵",
		PrintDate:          "15/10/2026",
		PTBrand:            "FreshMart",
		PTOriginCountry:    "Xuất xứ",
		PTProductCode:      "Mã SP",
		PTOriginalPrice:    "Giá gốc",
	}
}

// FixedTime is the clock every deterministic test stamps print dates with.
func FixedTime() time.Time {
	return time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
}

// MustLoadTemplateData loads a JSON fixture into TemplateData.
func MustLoadTemplateData(t *testing.T, path string) pkgmodel.TemplateData {
	t.Helper()

	data, err := LoadTemplateData(path)
	if err != nil {
		t.Fatalf("load template data: %v", err)
	}
	return data
}

// LoadTemplateData reads a JSON fixture into TemplateData, returning an error
// for callers managing setup outside of *testing.T.
func LoadTemplateData(path string) (pkgmodel.TemplateData, error) {
	if path == "" {
		return pkgmodel.TemplateData{}, errors.New("testsupport: template data path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.TemplateData{}, fmt.Errorf("testsupport: read template data: %w", err)
	}
	var out pkgmodel.TemplateData
	if err := json.Unmarshal(raw, &out); err != nil {
		return pkgmodel.TemplateData{}, fmt.Errorf("testsupport: unmarshal template data: %w", err)
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
