package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coolbeans/jalaw/pkg/render"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jalaw.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}
	if cfg.RenderOptions() != render.DefaultOptions() {
		t.Errorf("expected default render options, got %+v", cfg.RenderOptions())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
render:
  ruby: both
  line_break: " / "
  indent: false
watch:
  patterns: ["*.xml", "*.law"]
  debounce: 1s
  workers: 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	opts := cfg.RenderOptions()
	if opts.Ruby != render.RubyBoth || opts.LineBreak != " / " || opts.Indent {
		t.Errorf("unexpected render options: %+v", opts)
	}
	if len(cfg.Watch.Patterns) != 2 || cfg.Watch.Debounce != time.Second || cfg.Watch.Workers != 8 {
		t.Errorf("unexpected watch config: %+v", cfg.Watch)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "render:\n  ruby: gloss\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.Ruby != "gloss" {
		t.Errorf("expected ruby gloss, got %q", cfg.Render.Ruby)
	}
	if cfg.Log.Level != "info" || cfg.Watch.Workers != 4 {
		t.Errorf("expected defaults for unset sections, got %+v", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults without %s, got %v", DefaultFile, err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default level, got %q", cfg.Log.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "log: [", "parsing config"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad format", "log:\n  format: xml\n", "log.format"},
		{"bad ruby", "render:\n  ruby: furigana\n", "render.ruby"},
		{"bad pattern", "watch:\n  patterns: [\"[\"]\n", "watch.patterns"},
		{"no workers", "watch:\n  workers: 0\n", "watch.workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	log, err := cfg.Logger(true)
	if err != nil {
		t.Fatalf("Logger failed: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected verbose logger to enable debug")
	}

	cfg.Log.Format = "json"
	log, err = cfg.Logger(false)
	if err != nil {
		t.Fatalf("Logger failed: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected info logger to disable debug")
	}
}
