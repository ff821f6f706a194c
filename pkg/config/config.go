// Package config loads the jalaw command-line configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coolbeans/jalaw/pkg/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory
// when no path is given.
const DefaultFile = ".jalaw.yaml"

// Config is the full configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Watch  WatchConfig  `yaml:"watch"`
}

// LogConfig selects the logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// RenderConfig mirrors render.Options.
type RenderConfig struct {
	Ruby      string `yaml:"ruby"`
	LineBreak string `yaml:"line_break"`
	Indent    bool   `yaml:"indent"`
}

// WatchConfig controls the directory watcher.
type WatchConfig struct {
	// Patterns are file name globs; a file is parsed when any matches.
	Patterns []string      `yaml:"patterns"`
	Debounce time.Duration `yaml:"debounce"`
	Workers  int           `yaml:"workers"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	opts := render.DefaultOptions()
	return &Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Render: RenderConfig{
			Ruby:      string(opts.Ruby),
			LineBreak: opts.LineBreak,
			Indent:    opts.Indent,
		},
		Watch: WatchConfig{
			Patterns: []string{"*.xml"},
			Debounce: 200 * time.Millisecond,
			Workers:  4,
		},
	}
}

// Load reads the configuration at path. An empty path looks for
// DefaultFile in the working directory; a missing default file yields the
// defaults, while a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if _, err := render.ParseRubyMode(c.Render.Ruby); err != nil {
		return fmt.Errorf("render.ruby: %w", err)
	}
	for _, p := range c.Watch.Patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("watch.patterns: %q: %w", p, err)
		}
	}
	if c.Watch.Workers < 1 {
		return fmt.Errorf("watch.workers must be at least 1, got %d", c.Watch.Workers)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// RenderOptions converts the render section. The config must be valid.
func (c *Config) RenderOptions() render.Options {
	mode, _ := render.ParseRubyMode(c.Render.Ruby)
	return render.Options{Ruby: mode, LineBreak: c.Render.LineBreak, Indent: c.Render.Indent}
}

// Logger builds a zap logger from the log section. Verbose forces the debug
// level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if c.Log.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
