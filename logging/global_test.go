package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giygas/entresto-info/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConsoleLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		env      config.Environment
		level    string
		verbose  bool
		expected slog.Level
	}{
		{"dev defaults to info", config.EnvDevelopment, "", false, slog.LevelInfo},
		{"test quiet", config.EnvTest, "", false, slog.LevelError},
		{"test verbose", config.EnvTest, "", true, slog.LevelInfo},
		{"prod defaults to warn", config.EnvProduction, "", false, slog.LevelWarn},
		{"staging defaults to warn", config.EnvStaging, "", false, slog.LevelWarn},
		{"prod with debug override", config.EnvProduction, "debug", false, slog.LevelDebug},
		{"dev with error override", config.EnvDevelopment, "error", false, slog.LevelError},
		{"test ignores override", config.EnvTest, "debug", false, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetConsoleLogLevel(tt.env, tt.level, tt.verbose)
			if got != tt.expected {
				t.Errorf("GetConsoleLogLevel(%v, %q, %v) = %v, want %v", tt.env, tt.level, tt.verbose, got, tt.expected)
			}
		})
	}
}

func TestGetFileLogLevel(t *testing.T) {
	if got := GetFileLogLevel(); got != slog.LevelDebug {
		t.Errorf("GetFileLogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestInitLoggerWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	previous := DefaultLoggingService
	defer func() {
		DefaultLoggingService = previous
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}()

	svc := InitLogger(Options{
		Dir:            dir,
		RetentionWeeks: 1,
		MaxFileSize:    1024 * 1024,
		ConsoleLevel:   slog.LevelError,
		FileLevel:      slog.LevelDebug,
	})

	Debug("asset probe", "present", false)
	Info("catalog loaded", "tabs", 10)

	if err := svc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "entresto-*.log"))
	if len(matches) != 1 {
		t.Fatalf("Expected one log file, got %v", matches)
	}

	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	logs := string(content)
	if !strings.Contains(logs, `"msg":"asset probe"`) || !strings.Contains(logs, `"tabs":10`) {
		t.Errorf("Expected JSON records in file, got: %s", logs)
	}
}

func TestInitLoggerFallsBackToConsole(t *testing.T) {
	previous := DefaultLoggingService
	defer func() { DefaultLoggingService = previous }()

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	svc := InitLogger(Options{Dir: filepath.Join(blocker, "logs"), RetentionWeeks: 1, ConsoleLevel: slog.LevelError})
	if svc.Logger == nil {
		t.Fatal("Expected a console logger")
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close should be a no-op without a file, got %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Env:               config.EnvProduction,
		LogLevel:          "",
		LogRetentionWeeks: 6,
		MaxLogFileSize:    2 * 1024 * 1024,
	}

	opts := OptionsFromConfig(cfg, "logs")
	if opts.Dir != "logs" || opts.RetentionWeeks != 6 || opts.MaxFileSize != 2*1024*1024 {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if opts.ConsoleLevel != slog.LevelWarn {
		t.Errorf("Expected warn console level in prod, got %v", opts.ConsoleLevel)
	}
}

func TestPackageFunctionsWithoutInit(t *testing.T) {
	previous := DefaultLoggingService
	DefaultLoggingService = nil
	defer func() { DefaultLoggingService = previous }()

	Info("no logger yet")
	Warn("no logger yet")
	Error("no logger yet")
	Debug("no logger yet")
}

func TestConsoleLevelFromLoadedConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		level    string
		expected slog.Level
	}{
		{"prod without LOG_LEVEL", "prod", "", slog.LevelWarn},
		{"staging without LOG_LEVEL", "staging", "", slog.LevelWarn},
		{"dev without LOG_LEVEL", "dev", "", slog.LevelInfo},
		{"prod with LOG_LEVEL", "prod", "debug", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range config.GetEnvVars() {
				t.Setenv(key, "")
			}
			t.Setenv("ENV", tt.env)
			t.Setenv("LOG_LEVEL", tt.level)

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if got := OptionsFromConfig(cfg, "logs").ConsoleLevel; got != tt.expected {
				t.Errorf("Expected console level %v, got %v", tt.expected, got)
			}
		})
	}
}
