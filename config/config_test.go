package config

import (
	"strings"
	"testing"

	"github.com/giygas/entresto-info/theme"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8002")
	t.Setenv("ADDRESS", "127.0.0.1")
	t.Setenv("ENV", "dev")
	t.Setenv("LOG_LEVEL", "info")
}

func TestLoadValidConfig(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("IMAGE_NAME", "box.png")
	t.Setenv("ASSET_DIR", "/srv/entresto")
	t.Setenv("DEFAULT_THEME", "dark")
	t.Setenv("ASSET_CHECK_MINUTES", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8002" {
		t.Errorf("Expected port 8002, got %s", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Expected address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Expected env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.ImageName != "box.png" {
		t.Errorf("Expected image box.png, got %s", cfg.ImageName)
	}
	if cfg.AssetDir != "/srv/entresto" {
		t.Errorf("Expected asset dir /srv/entresto, got %s", cfg.AssetDir)
	}
	if cfg.DefaultTheme != theme.Dark {
		t.Errorf("Expected dark theme, got %s", cfg.DefaultTheme)
	}
	if cfg.AssetCheckMinutes != 10 {
		t.Errorf("Expected 10 minutes, got %d", cfg.AssetCheckMinutes)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	for _, key := range GetEnvVars() {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Expected default address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "" {
		t.Errorf("Expected empty default log level, got %s", cfg.LogLevel)
	}
	if cfg.LogRetentionWeeks != 4 {
		t.Errorf("Expected 4 weeks retention, got %d", cfg.LogRetentionWeeks)
	}
	if cfg.ImageName != "ENTRESTO.png" {
		t.Errorf("Expected default image ENTRESTO.png, got %s", cfg.ImageName)
	}
	if cfg.AssetDir != "" {
		t.Errorf("Expected empty asset dir, got %s", cfg.AssetDir)
	}
	if cfg.DefaultTheme != theme.Auto {
		t.Errorf("Expected auto theme, got %s", cfg.DefaultTheme)
	}
	if cfg.AssetCheckMinutes != 5 {
		t.Errorf("Expected 5 minutes, got %d", cfg.AssetCheckMinutes)
	}
}

func TestInvalidValues(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"port not a number", "PORT", "abc", "PORT must be a valid number"},
		{"port zero", "PORT", "0", "PORT must be between 1 and 65535"},
		{"port too high", "PORT", "65536", "PORT must be between 1 and 65535"},
		{"privileged port", "PORT", "80", "PORT 80 is privileged"},
		{"address", "ADDRESS", "invalid", "ADDRESS must be a valid IP address"},
		{"public address", "ADDRESS", "8.8.8.8", "is a public IP"},
		{"env", "ENV", "invalid", "ENV must be one of"},
		{"log level", "LOG_LEVEL", "verbose", "LOG_LEVEL must be one of"},
		{"retention", "LOG_RETENTION_WEEKS", "60", "LOG_RETENTION_WEEKS is too large"},
		{"log size", "MAX_LOG_FILE_SIZE", "10", "MAX_LOG_FILE_SIZE is too small"},
		{"body size", "MAX_REQUEST_BODY", "-1", "MAX_REQUEST_BODY must be positive"},
		{"image path", "IMAGE_NAME", "../ENTRESTO.png", "IMAGE_NAME must be a file name"},
		{"theme", "DEFAULT_THEME", "sepia", "invalid DEFAULT_THEME"},
		{"check interval", "ASSET_CHECK_MINUTES", "0", "ASSET_CHECK_MINUTES must be between"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%s, got nil", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("Expected error containing %q, got %v", tc.expected, err)
			}
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input    string
		expected Environment
		hasError bool
	}{
		{"dev", EnvDevelopment, false},
		{"development", EnvDevelopment, false},
		{"staging", EnvStaging, false},
		{"prod", EnvProduction, false},
		{"Production", EnvProduction, false},
		{"test", EnvTest, false},
		{"invalid", EnvDevelopment, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env, err := ParseEnvironment(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error for %s, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.input, err)
			}
			if env != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, env)
			}
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	tests := []struct {
		env      Environment
		expected string
	}{
		{EnvDevelopment, "dev"},
		{EnvStaging, "staging"},
		{EnvProduction, "prod"},
		{EnvTest, "test"},
	}

	for _, tt := range tests {
		if got := tt.env.String(); got != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, got)
		}
	}
}
