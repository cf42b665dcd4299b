package pricing

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatter_VietnameseGrouping(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		amount  float64
		country string
		want    string
	}{
		{amount: 1234567, country: "Việt Nam", want: "1.234.567 ₫"},
		{amount: 75000, country: "vietnam", want: "75.000 ₫"},
		{amount: 999.6, country: "VN", want: "1.000 ₫"},
		{amount: 500, country: "Atlantis", want: "500 ₫"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.amount, tt.country); got != tt.want {
			t.Fatalf("Format(%v, %q) = %q, want %q", tt.amount, tt.country, got, tt.want)
		}
	}
}

func TestFormatter_SymbolBeforeWithDecimals(t *testing.T) {
	f := NewFormatter()

	if got := f.Format(1234.5, "United States"); got != "$1,234" {
		t.Fatalf("Format = %q", got)
	}
	if got := f.Decimal(1234.5, "United States"); got != "50" {
		t.Fatalf("Decimal = %q", got)
	}
	if got := f.Decimal(3.999, "usa"); got != "00" {
		t.Fatalf("Decimal carry = %q", got)
	}
	if got := f.Format(3.999, "usa"); got != "$4" {
		t.Fatalf("Format carry = %q", got)
	}
	if got := f.Decimal(1234, "Việt Nam"); got != "" {
		t.Fatalf("whole-unit currency should have no decimal, got %q", got)
	}
}

func TestFormatter_AccentInsensitiveNames(t *testing.T) {
	f := NewFormatter()

	if got := f.RuleFor("Nhật Bản").Symbol; got != "¥" {
		t.Fatalf("Nhật Bản symbol = %q", got)
	}
	if got := f.RuleFor("  Hàn   Quốc ").Symbol; got != "₩" {
		t.Fatalf("Hàn Quốc symbol = %q", got)
	}
	if got := f.RuleFor("Đức").Symbol; got != "€" {
		t.Fatalf("Đức symbol = %q", got)
	}
}

func TestFormatter_CustomRules(t *testing.T) {
	f := NewFormatter(Rule{Names: []string{"test"}, Locale: language.English})

	if got := f.Format(-4200, "anything"); got != "-4,200" {
		t.Fatalf("Format = %q", got)
	}
	format := f.FormatFunc()
	if got := format(10, "test"); got != "10" {
		t.Fatalf("FormatFunc = %q", got)
	}
}

func TestFormatter_ShortVietnameseNamesNeedAccents(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		country string
		want    string
	}{
		{country: "Mỹ", want: "$"},
		{country: "  MỸ ", want: "$"},
		{country: "Ý", want: "€"},
		{country: "MY", want: "₫"},
		{country: "my", want: "₫"},
		{country: "y", want: "₫"},
		{country: "Hoa Kỳ", want: "$"},
	}
	for _, tt := range tests {
		if got := f.RuleFor(tt.country).Symbol; got != tt.want {
			t.Fatalf("RuleFor(%q).Symbol = %q, want %q", tt.country, got, tt.want)
		}
	}
}
