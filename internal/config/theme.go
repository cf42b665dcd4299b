package config

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-printlabel/pkg/render"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

// RendererConfig converts the theme section into the renderer form. It
// returns nil when nothing is overridden.
func (t Theme) RendererConfig() *theme.RendererConfig {
	if len(t.Backgrounds) == 0 && len(t.CSSVars) == 0 {
		return nil
	}

	assets := make(map[string]string, len(t.Backgrounds))
	for format, url := range t.Backgrounds {
		f, ok := render.LookupFormat(format)
		url = strings.TrimSpace(url)
		if !ok || url == "" {
			continue
		}
		assets[labels.BackgroundKey(f)] = url
	}

	vars := make(map[string]string, len(t.CSSVars))
	for key, value := range t.CSSVars {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, "--") {
			key = "--" + key
		}
		vars[key] = value
	}

	return &theme.RendererConfig{
		Theme:   t.Name,
		CSSVars: vars,
		AssetURL: func(key string) string {
			return assets[key]
		},
	}
}
