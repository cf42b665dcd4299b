package labels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-printlabel/pkg/pricing"
	"github.com/goliatone/go-printlabel/pkg/render"
)

// Bucket maps a price string length range to one font-size class. MaxLen is
// inclusive; zero marks the unbounded last bucket.
type Bucket struct {
	MaxLen int
	Class  string
	Rem    float64
}

// Offset anchors the original-price line to a shared baseline as its font
// shrinks: top = BaseTop + (BaseFont - bucketFont)/2 + Nudge.
type Offset struct {
	BaseTop  float64
	BaseFont float64
	Nudge    float64
}

// Top computes the original-price top position in rem for a bucket font size.
func (o Offset) Top(bucketFont float64) float64 {
	return round3(o.BaseTop + (o.BaseFont-bucketFont)/2 + o.Nudge)
}

var (
	a4Sale = []Bucket{
		{3, "price-huge", 13.75},
		{4, "price-xxl", 12.5},
		{5, "price-xl", 11.25},
		{6, "price-lg", 10},
		{7, "price-md", 8.75},
		{8, "price-sm", 7.75},
		{9, "price-xs", 6.75},
		{10, "price-xxs", 6},
		{0, "price-tiny", 5.25},
	}
	a4Original = []Bucket{
		{3, "original-huge", 8.25},
		{4, "original-xxl", 7.5},
		{5, "original-xl", 6.75},
		{6, "original-lg", 6},
		{7, "original-md", 5.25},
		{8, "original-sm", 4.65},
		{9, "original-xs", 4.05},
		{10, "original-xxs", 3.6},
		{0, "original-tiny", 3.15},
	}

	v1Sale = []Bucket{
		{3, "price-huge", 12.5},
		{4, "price-xxl", 11.25},
		{5, "price-xl", 10},
		{6, "price-lg", 9},
		{7, "price-md", 8},
		{8, "price-sm", 7},
		{9, "price-xs", 6.25},
		{10, "price-xxs", 5.5},
		{0, "price-tiny", 4.75},
	}
	v1Original = []Bucket{
		{3, "original-huge", 7.5},
		{4, "original-xxl", 6.75},
		{5, "original-xl", 6},
		{6, "original-lg", 5.4},
		{7, "original-md", 4.8},
		{8, "original-sm", 4.2},
		{9, "original-xs", 3.75},
		{10, "original-xxs", 3.3},
		{0, "original-tiny", 2.85},
	}

	v2Sale = []Bucket{
		{3, "price-huge", 11.25},
		{4, "price-xxl", 10.25},
		{5, "price-xl", 9.25},
		{6, "price-lg", 8.25},
		{7, "price-md", 7.25},
		{8, "price-sm", 6.5},
		{9, "price-xs", 5.75},
		{10, "price-xxs", 5},
		{0, "price-tiny", 4.5},
	}
	v2Original = []Bucket{
		{3, "original-huge", 6.75},
		{4, "original-xxl", 6.15},
		{5, "original-xl", 5.55},
		{6, "original-lg", 4.95},
		{7, "original-md", 4.35},
		{8, "original-sm", 3.9},
		{9, "original-xs", 3.45},
		{10, "original-xxs", 3},
		{0, "original-tiny", 2.7},
	}

	v3Sale = []Bucket{
		{3, "price-huge", 12},
		{4, "price-xxl", 10.75},
		{5, "price-xl", 9.5},
		{6, "price-lg", 8.5},
		{7, "price-md", 7.5},
		{8, "price-sm", 6.75},
		{9, "price-xs", 6},
		{10, "price-xxs", 5.25},
		{0, "price-tiny", 4.5},
	}
	v3Original = []Bucket{
		{3, "original-huge", 7.2},
		{4, "original-xxl", 6.45},
		{5, "original-xl", 5.7},
		{6, "original-lg", 5.1},
		{7, "original-md", 4.5},
		{8, "original-sm", 4.05},
		{9, "original-xs", 3.6},
		{10, "original-xxs", 3.15},
		{0, "original-tiny", 2.7},
	}
)

var offsets = map[render.Format]Offset{
	render.FormatA4: {BaseTop: 52.5, BaseFont: 8.25, Nudge: 0.25},
	render.FormatV1: {BaseTop: 49, BaseFont: 7.5, Nudge: 0.25},
	render.FormatV3: {BaseTop: 50.5, BaseFont: 7.2, Nudge: 0.2},
}

// SaleBuckets returns a copy of the sale-price table for format. Formats
// without adaptive sizing return nil.
func SaleBuckets(format render.Format) []Bucket {
	sale, _ := tablesFor(format)
	return append([]Bucket(nil), sale...)
}

// OriginalBuckets returns a copy of the original-price table for format.
func OriginalBuckets(format render.Format) []Bucket {
	_, original := tablesFor(format)
	return append([]Bucket(nil), original...)
}

// OffsetFor reports the original-price baseline constants of format. Only a4,
// v1 and v3 shift the original price; the others keep a fixed top.
func OffsetFor(format render.Format) (Offset, bool) {
	o, ok := offsets[format]
	return o, ok
}

func tablesFor(format render.Format) (sale, original []Bucket) {
	switch format {
	case render.FormatA4:
		return a4Sale, a4Original
	case render.FormatV1:
		return v1Sale, v1Original
	case render.FormatV2:
		return v2Sale, v2Original
	case render.FormatV3:
		return v3Sale, v3Original
	default:
		return nil, nil
	}
}

// SelectBucket scans buckets in order and returns the first one whose MaxLen
// covers the rune length of price. An empty price lands in the first bucket.
func SelectBucket(buckets []Bucket, price string) Bucket {
	if len(buckets) == 0 {
		return Bucket{}
	}
	n := pricing.RuneLen(price)
	for _, b := range buckets {
		if b.MaxLen == 0 || n <= b.MaxLen {
			return b
		}
	}
	return buckets[len(buckets)-1]
}

// bucketCSS writes one rule per bucket, so the classes in the markup carry
// their own sizes.
func bucketCSS(tables ...[]Bucket) string {
	var b strings.Builder
	for _, table := range tables {
		for _, bucket := range table {
			fmt.Fprintf(&b, ".%s { font-size: %s; }\n", bucket.Class, rem(bucket.Rem))
		}
	}
	return b.String()
}

func rem(v float64) string {
	return strconv.FormatFloat(round3(v), 'f', -1, 64) + "rem"
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
