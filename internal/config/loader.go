// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` from four layers (highest precedence
last):

 1. Built-in `Defaults()`.
 2. Optional `.env` file at `<root>/conf/.env`.
 3. `conf/printlabel.yaml` (optional; defaults alone are a valid config).
 4. Environment variables prefixed `PRINTLABEL_`, where `__` maps to "."
    (e.g., `PRINTLABEL_HTTP__LISTEN_ADDR → http.listen_addr`).

The merged tree is unmarshalled into typed structs, validated, enriched with
the runtime root path and cached in an `atomic.Pointer` for lock-free reads.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	// EnvPrefix scopes environment overrides.
	EnvPrefix = "PRINTLABEL_"
	// FileName is the YAML file looked up under <root>/conf.
	FileName = "printlabel.yaml"
)

var current atomic.Pointer[Config]

// Option customises a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	root string
	file string
}

// WithRoot skips root discovery.
func WithRoot(root string) Option {
	return func(o *loadOptions) {
		o.root = strings.TrimSpace(root)
	}
}

// WithFile loads an explicit YAML file instead of <root>/conf/printlabel.yaml.
// A missing explicit file is an error.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = strings.TrimSpace(path)
	}
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves PRINTLABEL_ROOT or climbs directories until
// conf/printlabel.yaml is found.  Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(EnvPrefix + "ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", FileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads defaults, .env, YAML and env overrides, validates, and caches
// the result.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	root := o.root
	if root == "" {
		root = rootDir()
	}
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := o.file
	explicit := yamlPath != ""
	if !explicit {
		yamlPath = filepath.Join(root, "conf", FileName)
	}
	if _, err := os.Stat(yamlPath); !explicit && errors.Is(err, fs.ErrNotExist) {
		zap.S().Debugw("config yaml not found, using defaults", "file", yamlPath)
	} else {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, fmt.Errorf("config: load %s: %w", yamlPath, err)
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// PRINTLABEL_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, fmt.Errorf("config: env overlay: %w", err)
	}

	// Keys absent from every layer keep their Defaults() value.
	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"default_format", cfg.Render.DefaultFormat,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }
