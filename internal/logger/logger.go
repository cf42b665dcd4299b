// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Label runs write lifecycle and error events to one JSON log per day under
// `<dir>/YYYY-MM-DD.log`.  When Console is set (typically an interactive TTY)
// the same events are teed to stderr through a console encoder.  Rotation,
// compression, and retention are handled by Lumberjack.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Dir receives the daily log files.  Empty disables the file sink.
	Dir     string
	Level   string
	Console bool
	// ConsoleWriter defaults to os.Stderr so stdout stays free for rendered
	// HTML.
	ConsoleWriter io.Writer
	Now           func() time.Time
}

// New returns a *zap.Logger writing JSON to Dir/YYYY-MM-DD.log, optionally
// teed to a console core.  The logger is installed as the process-wide
// default via zap.ReplaceGlobals.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var (
		cores     []zapcore.Core
		errOutput zapcore.WriteSyncer = zapcore.AddSync(os.Stderr)
	)

	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, now().Format("2006-01-02")+".log"),
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level))
		errOutput = fileSink
	}

	if opts.Console {
		w := opts.ConsoleWriter
		if w == nil {
			w = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	z := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(errOutput), zap.AddCaller())
	zap.ReplaceGlobals(z)

	z.Info("logger online", zap.Bool("console", opts.Console), zap.String("level", level.String()))
	return z, nil
}

// ParseLevel accepts debug, info, warn and error.  Empty means info.
func ParseLevel(raw string) (zapcore.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logger: %w", err)
	}
	return level, nil
}

// RunningInTTY reports whether stderr is a character device.
func RunningInTTY() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
