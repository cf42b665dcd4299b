package printlabel

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

//go:embed assets/backgrounds/*.png
var embeddedBackgrounds embed.FS

// EmbeddedTemplates exposes the built-in label templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return labels.TemplatesFS()
}

// BackgroundAssetsFS exposes placeholder background images named after the
// paths the labels reference (a4s.png, a5.png, v1s.png, v2s.png, v3s.png).
//
// Typical mount:
//
//	mux.Handle("/",
//	  http.FileServerFS(printlabel.BackgroundAssetsFS()),
//	)
func BackgroundAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedBackgrounds, "assets/backgrounds")
	if err != nil {
		return embeddedBackgrounds
	}
	return sub
}
