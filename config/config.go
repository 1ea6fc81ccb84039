// Package config has the configuration for the viewer
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/giygas/entresto-info/theme"
)

// Environment is the deployment environment the process runs in
type Environment string

const (
	EnvDevelopment Environment = "dev"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "prod"
	EnvTest        Environment = "test"
)

func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment accepts the short and long environment names
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return EnvDevelopment, nil
	case "staging":
		return EnvStaging, nil
	case "prod", "production":
		return EnvProduction, nil
	case "test":
		return EnvTest, nil
	}
	return EnvDevelopment, fmt.Errorf("ENV must be one of: [dev staging prod test], got: %s", s)
}

// Config holds all application configuration
type Config struct {
	Port              string
	Address           string
	Env               Environment
	LogLevel          string
	LogRetentionWeeks int   // weeks of log files kept
	MaxLogFileSize    int64 // bytes
	MaxRequestBody    int64 // bytes
	MaxHeaderSize     int64 // bytes

	ImageName         string
	AssetDir          string // empty means the executable directory
	DefaultTheme      theme.Mode
	AssetCheckMinutes int
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	env, err := ParseEnvironment(getEnvWithDefault("ENV", "dev"))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid ENV: %w", err)
	}

	defaultTheme, err := theme.ParseMode(getEnvWithDefault("DEFAULT_THEME", string(theme.Auto)))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid DEFAULT_THEME: %w", err)
	}

	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8000"),
		Address:           getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:               env,
		LogLevel:          strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))), // empty: per-ENV default
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4),
		MaxLogFileSize:    getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 104857600), // 100MB
		MaxRequestBody:    getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576),    // 1MB
		MaxHeaderSize:     getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),     // 1MB
		ImageName:         getEnvWithDefault("IMAGE_NAME", "ENTRESTO.png"),
		AssetDir:          os.Getenv("ASSET_DIR"),
		DefaultTheme:      defaultTheme,
		AssetCheckMinutes: getIntEnvWithDefault("ASSET_CHECK_MINUTES", 5),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return fmt.Errorf("invalid MAX_REQUEST_BODY: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return fmt.Errorf("invalid MAX_HEADER_SIZE: %w", err)
	}

	if err := validateLogRetentionWeeks(cfg.LogRetentionWeeks); err != nil {
		return fmt.Errorf("invalid LOG_RETENTION_WEEKS: %w", err)
	}

	if err := validateMaxLogFileSize(cfg.MaxLogFileSize); err != nil {
		return fmt.Errorf("invalid MAX_LOG_FILE_SIZE: %w", err)
	}

	if err := validateImageName(cfg.ImageName); err != nil {
		return fmt.Errorf("invalid IMAGE_NAME: %w", err)
	}

	if err := validateAssetCheckMinutes(cfg.AssetCheckMinutes); err != nil {
		return fmt.Errorf("invalid ASSET_CHECK_MINUTES: %w", err)
	}

	return nil
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	ip := net.ParseIP(address)
	if ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	// the viewer is meant to sit behind a proxy or on a private network
	if !ip.IsLoopback() && !ip.IsPrivate() && !ip.IsUnspecified() {
		return fmt.Errorf("ADDRESS %s is a public IP, consider using private network ranges", address)
	}

	return nil
}

// validateLogLevel accepts an empty level, which leaves the choice to ENV
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return nil
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 {
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

func validateLogRetentionWeeks(weeks int) error {
	if weeks <= 0 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be positive, got: %d", weeks)
	}

	if weeks > 52 {
		return fmt.Errorf("LOG_RETENTION_WEEKS is too large (max 52 weeks), got: %d", weeks)
	}

	return nil
}

func validateMaxLogFileSize(size int64) error {
	if size < 1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too small (min 1MB), got: %d bytes", size)
	}

	if size > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too large (max 1GB), got: %d bytes", size)
	}

	return nil
}

// validateImageName only accepts a bare file name, the directories are fixed
func validateImageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("IMAGE_NAME cannot be empty")
	}

	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == ".." {
		return fmt.Errorf("IMAGE_NAME must be a file name without directories, got: %s", name)
	}

	return nil
}

func validateAssetCheckMinutes(minutes int) error {
	if minutes < 1 || minutes > 1440 {
		return fmt.Errorf("ASSET_CHECK_MINUTES must be between 1 and 1440, got: %d", minutes)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"PORT",
		"ADDRESS",
		"ENV",
		"LOG_LEVEL",
		"LOG_RETENTION_WEEKS",
		"MAX_LOG_FILE_SIZE",
		"MAX_REQUEST_BODY",
		"MAX_HEADER_SIZE",
		"IMAGE_NAME",
		"ASSET_DIR",
		"DEFAULT_THEME",
		"ASSET_CHECK_MINUTES",
	}
}
