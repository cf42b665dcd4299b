package labels

import (
	"fmt"

	"github.com/goliatone/go-printlabel/pkg/render"
)

type layout struct {
	format     render.Format
	template   string
	background string
	// originalTop is used when the format has no Offset.
	originalTop float64
	// sheet formats repeat the label on a grid and carry no background.
	sheet bool
}

var layouts = map[render.Format]layout{
	render.FormatA4: {format: render.FormatA4, template: "a4", background: "/a4s.png"},
	render.FormatA5: {format: render.FormatA5, template: "a5", background: "/a5.png"},
	render.FormatV1: {format: render.FormatV1, template: "v1", background: "/v1s.png"},
	render.FormatV2: {format: render.FormatV2, template: "v2", background: "/v2s.png", originalTop: 51.5},
	render.FormatV3: {format: render.FormatV3, template: "v3", background: "/v3s.png"},
	render.FormatI4: {format: render.FormatI4, template: "i4", sheet: true},
}

// I4 sheet geometry: 8 rows by 3 columns of identical labels.
var (
	i4RowTops = [8]float64{1.5, 12, 22.5, 33, 43.5, 54, 64.5, 75}
	i4Columns = [3]struct {
		Left, Brand, Origin float64
	}{
		{Left: 1.25, Brand: 2, Origin: 12.25},
		{Left: 22.75, Brand: 23.5, Origin: 33.75},
		{Left: 44.25, Brand: 45, Origin: 55.25},
	}
)

// I4Cells is the number of labels on one I4 sheet.
const I4Cells = len(i4RowTops) * len(i4Columns)

// BackgroundKey is the go-theme asset key that overrides a format's background.
func BackgroundKey(format render.Format) string {
	return fmt.Sprintf("%s.background", format)
}

// DefaultBackground returns the root-relative image path a format's label
// references when no theme overrides it. Sheet formats return "".
func DefaultBackground(format render.Format) string {
	return layouts[format].background
}

func layoutFor(format render.Format) (layout, bool) {
	l, ok := layouts[format]
	return l, ok
}
