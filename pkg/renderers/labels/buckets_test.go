package labels

import (
	"strings"
	"testing"

	"github.com/goliatone/go-printlabel/pkg/render"
)

var adaptiveFormats = []render.Format{render.FormatA4, render.FormatV1, render.FormatV2, render.FormatV3}

func TestSaleBucketsStrictlyDecreasing(t *testing.T) {
	for _, format := range adaptiveFormats {
		t.Run(string(format), func(t *testing.T) {
			buckets := SaleBuckets(format)
			prev := SelectBucket(buckets, strings.Repeat("9", 3))
			for n := 4; n <= 11; n++ {
				got := SelectBucket(buckets, strings.Repeat("9", n))
				if got.Rem >= prev.Rem {
					t.Fatalf("length %d: rem %v not below %v", n, got.Rem, prev.Rem)
				}
				prev = got
			}
		})
	}
}

func TestOriginalBucketsScaleBelowSale(t *testing.T) {
	for _, format := range adaptiveFormats {
		t.Run(string(format), func(t *testing.T) {
			sale, original := SaleBuckets(format), OriginalBuckets(format)
			if len(sale) != 9 || len(original) != len(sale) {
				t.Fatalf("expected 9 buckets per table, got %d and %d", len(sale), len(original))
			}
			for i := range sale {
				if sale[i].MaxLen != original[i].MaxLen {
					t.Fatalf("bucket %d boundary mismatch: %d vs %d", i, sale[i].MaxLen, original[i].MaxLen)
				}
				if original[i].Rem >= sale[i].Rem {
					t.Fatalf("bucket %d original %v not below sale %v", i, original[i].Rem, sale[i].Rem)
				}
				if ratio := original[i].Rem / sale[i].Rem; ratio < 0.59 || ratio > 0.61 {
					t.Fatalf("bucket %d ratio %v outside 0.6", i, ratio)
				}
				if !strings.HasPrefix(original[i].Class, "original-") || !strings.HasPrefix(sale[i].Class, "price-") {
					t.Fatalf("bucket %d unexpected classes %q/%q", i, sale[i].Class, original[i].Class)
				}
			}
		})
	}
}

func TestSelectBucketBoundaries(t *testing.T) {
	buckets := SaleBuckets(render.FormatA4)
	tests := []struct {
		price string
		want  string
	}{
		{price: "", want: "price-huge"},
		{price: "5 ₫", want: "price-huge"},
		{price: "50 ₫", want: "price-xxl"},
		{price: "500 ₫", want: "price-xl"},
		{price: "75.000 ₫", want: "price-sm"},
		{price: "100.000 ₫", want: "price-xs"},
		{price: "1.000.000", want: "price-xs"},
		{price: "10.000.000", want: "price-xxs"},
		{price: "1.234.567 ₫", want: "price-tiny"},
		{price: "123.456.789.000 ₫", want: "price-tiny"},
	}
	for _, tt := range tests {
		if got := SelectBucket(buckets, tt.price); got.Class != tt.want {
			t.Errorf("SelectBucket(%q) = %q, want %q", tt.price, got.Class, tt.want)
		}
	}
}

func TestSelectBucketWithoutTable(t *testing.T) {
	if got := SelectBucket(SaleBuckets(render.FormatA5), "100 ₫"); got != (Bucket{}) {
		t.Fatalf("expected zero bucket for a5, got %+v", got)
	}
	if OriginalBuckets(render.FormatI4) != nil {
		t.Fatalf("i4 has no sizing table")
	}
}

func TestOriginalPriceOffsets(t *testing.T) {
	tests := []struct {
		format render.Format
		price  string
		want   string
	}{
		{format: render.FormatA4, price: "100.000 ₫", want: "54.85rem"},
		{format: render.FormatA4, price: "100 ₫", want: "53.5rem"},
		{format: render.FormatA4, price: "9 ₫", want: "52.75rem"},
		{format: render.FormatV1, price: "100.000 ₫", want: "51.125rem"},
		{format: render.FormatV3, price: "100.000 ₫", want: "52.5rem"},
		{format: render.FormatV3, price: "1.234.567 ₫", want: "52.95rem"},
	}
	for _, tt := range tests {
		offset, ok := OffsetFor(tt.format)
		if !ok {
			t.Fatalf("%s: expected offset constants", tt.format)
		}
		bucket := SelectBucket(OriginalBuckets(tt.format), tt.price)
		if got := rem(offset.Top(bucket.Rem)); got != tt.want {
			t.Errorf("%s %q: top = %s, want %s", tt.format, tt.price, got, tt.want)
		}
	}

	if _, ok := OffsetFor(render.FormatV2); ok {
		t.Fatalf("v2 keeps a fixed original-price top")
	}
}

func TestBucketCSS(t *testing.T) {
	css := bucketCSS(SaleBuckets(render.FormatV2), OriginalBuckets(render.FormatV2))
	for _, want := range []string{
		".price-huge { font-size: 11.25rem; }",
		".price-tiny { font-size: 4.5rem; }",
		".original-xl { font-size: 5.55rem; }",
	} {
		if !strings.Contains(css, want) {
			t.Fatalf("bucket css missing %q:\n%s", want, css)
		}
	}
}
