package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-printlabel/pkg/render"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(WithRoot(root))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Defaults()
	want.Paths.Root = root
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if Get() != cfg {
		t.Fatalf("expected Load to cache the config")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(WithRoot(t.TempDir()), WithFile(filepath.Join("testdata", "valid.yaml")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.ListenAddr != "localhost:9090" {
		t.Fatalf("listen addr: %q", cfg.HTTP.ListenAddr)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown timeout: %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.MaxBatchItems != 10 {
		t.Fatalf("max batch items: %d", cfg.HTTP.MaxBatchItems)
	}
	if cfg.HTTP.MaxBodyBytes != Defaults().HTTP.MaxBodyBytes {
		t.Fatalf("expected default body limit, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Render.DefaultFormat != "v2" || cfg.Render.Locale != "en-US" {
		t.Fatalf("render section: %+v", cfg.Render)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PRINTLABEL_HTTP__LISTEN_ADDR", "localhost:7070")
	t.Setenv("PRINTLABEL_RENDER__DEFAULT_FORMAT", "i4")
	t.Setenv("PRINTLABEL_HTTP__MAX_BATCH_ITEMS", "3")

	cfg, err := Load(WithRoot(t.TempDir()), WithFile(filepath.Join("testdata", "valid.yaml")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.ListenAddr != "localhost:7070" {
		t.Fatalf("env override not applied: %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Render.DefaultFormat != "i4" {
		t.Fatalf("env override not applied: %q", cfg.Render.DefaultFormat)
	}
	if cfg.HTTP.MaxBatchItems != 3 {
		t.Fatalf("env override not applied: %d", cfg.HTTP.MaxBatchItems)
	}
}

func TestLoad_DotEnvUnderConf(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", ".env"), []byte("PRINTLABEL_RENDER__LOCALE=ja\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("PRINTLABEL_RENDER__LOCALE") })

	cfg, err := Load(WithRoot(root))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Locale != "ja" {
		t.Fatalf("expected .env locale, got %q", cfg.Render.Locale)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(WithRoot(t.TempDir()), WithFile(filepath.Join("testdata", "invalid.yaml")))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, field := range []string{"ListenAddr", "DefaultFormat", "Level"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in error: %v", field, err)
		}
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(WithRoot(t.TempDir()), WithFile("testdata/missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestTheme_RendererConfig(t *testing.T) {
	if (Theme{}).RendererConfig() != nil {
		t.Fatalf("expected nil for an empty theme")
	}

	cfg, err := Load(WithRoot(t.TempDir()), WithFile(filepath.Join("testdata", "valid.yaml")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rc := cfg.Theme.RendererConfig()
	if rc == nil {
		t.Fatalf("expected renderer config")
	}
	if got := rc.AssetURL(labels.BackgroundKey(render.FormatA4)); got != "/cdn/a4-holiday.png" {
		t.Fatalf("a4 background: %q", got)
	}
	if got := rc.AssetURL(labels.BackgroundKey(render.FormatV1)); got != "" {
		t.Fatalf("v1 background should not be overridden: %q", got)
	}
	if diff := cmp.Diff(map[string]string{"--label-accent": "#c8102e"}, rc.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
}
