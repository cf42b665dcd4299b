// internal/config/model.go
//
// Typed configuration model for the label service and CLI.
//
// Struct tags use `koanf:"…"`.  Koanf ignores `yaml` tags unless configured
// otherwise.  The `Paths` block is filled at runtime; YAML must not set it.

package config

import "time"

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr      string        `koanf:"listen_addr"      validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"   validate:"gte=0"`
	MaxBatchItems   int           `koanf:"max_batch_items"  validate:"gte=0"`
}

// Render holds label rendering defaults.
type Render struct {
	DefaultFormat string `koanf:"default_format" validate:"omitempty,oneof=a4 a5 v1 v2 v3 i4 A4 A5 V1 V2 V3 I4"`
	Locale        string `koanf:"locale"`
	// TemplatesDir overrides the embedded label templates when set.
	TemplatesDir string `koanf:"templates_dir" validate:"omitempty,dir"`
	// AssetsDir is served under /assets/.  Empty serves the embedded
	// background images.
	AssetsDir string `koanf:"assets_dir" validate:"omitempty,dir"`
}

// Theme overrides label backgrounds and CSS custom properties.
type Theme struct {
	Name string `koanf:"name"`
	// Backgrounds maps a format (a4, v1, …) to a background image URL.
	Backgrounds map[string]string `koanf:"backgrounds"`
	CSSVars     map[string]string `koanf:"css_vars"`
}

// Log configures the rotating JSON log.
type Log struct {
	Dir     string `koanf:"dir"`
	Level   string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Console bool   `koanf:"console"`
}

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // PRINTLABEL_ROOT or discovered parent
}

// Config is the immutable aggregate returned by Load() and cached for
// lock-free reads.
type Config struct {
	HTTP   HTTP   `koanf:"http"`
	Render Render `koanf:"render"`
	Theme  Theme  `koanf:"theme"`
	Log    Log    `koanf:"log"`
	Paths  Paths  `koanf:"-"`
}

// Defaults returns the values used for keys the YAML file leaves out.
func Defaults() Config {
	return Config{
		HTTP: HTTP{
			ListenAddr:      ":8080",
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20,
			MaxBatchItems:   200,
		},
		Render: Render{
			DefaultFormat: "a4",
			Locale:        "vi",
		},
		Log: Log{
			Dir:   "logs",
			Level: "info",
		},
	}
}
