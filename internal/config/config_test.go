package config

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vango-dev/treeseq/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if cfg.Tracing.TracerName != DefaultTracerName {
		t.Errorf("Tracing.TracerName = %q, want %q", cfg.Tracing.TracerName, DefaultTracerName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !stderrors.Is(err, errors.ErrConfigNotFound) {
		t.Fatalf("Load(empty dir) = %v, want ErrConfigNotFound", err)
	}

	configJSON := `{
  "logLevel": "debug",
  "metrics": {"namespace": "myapp"}
}`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Metrics.Namespace != "myapp" {
		t.Errorf("Metrics.Namespace = %q, want myapp", cfg.Metrics.Namespace)
	}
	if cfg.Tracing.TracerName != DefaultTracerName {
		t.Errorf("Tracing.TracerName default not applied: %q", cfg.Tracing.TracerName)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := "logFormat: json\ntracing:\n  tracerName: ui\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "treeseq.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Tracing.TracerName != "ui" {
		t.Errorf("Tracing.TracerName = %q, want ui", cfg.Tracing.TracerName)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad json", "treeseq.json", `{"logLevel": `},
		{"bad yaml", "treeseq.yml", "logLevel: [unterminated"},
		{"bad level", "treeseq.json", `{"logLevel": "loud"}`},
		{"bad format", "treeseq.json", `{"logFormat": "xml"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("LoadFile() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "treeseq.yml"), []byte("logLevel: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		wantJSON bool
		debugOn  bool
	}{
		{"text info", "info", "text", false, false},
		{"json debug", "debug", "json", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.LogLevel = tt.level
			cfg.LogFormat = tt.format

			var buf bytes.Buffer
			logger := cfg.Logger(&buf)
			logger.Debug("dbg")
			logger.Info("hello")

			out := buf.String()
			if tt.wantJSON != strings.HasPrefix(out, "{") {
				t.Errorf("output format mismatch: %q", out)
			}
			if tt.debugOn != strings.Contains(out, "dbg") {
				t.Errorf("debug visibility mismatch: %q", out)
			}
		})
	}

	if (&Config{LogLevel: "warning"}).Level() != slog.LevelWarn {
		t.Error(`Level("warning") != LevelWarn`)
	}
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working dir: %v", err)
		}
	})
}

func TestLoadFromWorkingDir(t *testing.T) {
	t.Run("defaults without config", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfg, err := LoadFromWorkingDir()
		if err != nil {
			t.Fatalf("LoadFromWorkingDir() error: %v", err)
		}
		if cfg.Path() != "" || cfg.LogLevel != DefaultLogLevel {
			t.Errorf("expected defaults, got path=%q level=%q", cfg.Path(), cfg.LogLevel)
		}
	})

	t.Run("nearest config", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "ui")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(`{"logLevel":"warn"}`), 0644); err != nil {
			t.Fatal(err)
		}
		chdir(t, nested)

		cfg, err := LoadFromWorkingDir()
		if err != nil {
			t.Fatalf("LoadFromWorkingDir() error: %v", err)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
		}
	})
}

func TestWorkingDirUnavailable(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on getcwd failing for a removed directory")
	}
	gone := filepath.Join(t.TempDir(), "gone")
	if err := os.Mkdir(gone, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, gone)
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Getwd(); err == nil {
		t.Skip("working directory still resolvable")
	}

	if _, err := FindProjectRoot("relative"); !stderrors.Is(err, errors.ErrConfigAccess) {
		t.Errorf("FindProjectRoot() = %v, want ErrConfigAccess", err)
	}
	if _, err := LoadFromWorkingDir(); !stderrors.Is(err, errors.ErrConfigAccess) {
		t.Errorf("LoadFromWorkingDir() = %v, want ErrConfigAccess", err)
	}
}
