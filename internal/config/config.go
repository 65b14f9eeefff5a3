package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"heroscores/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Views     ViewConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the scores workbook location and static asset root
type DataConfig struct {
	PublicDir    string
	ScoresFile   string
	ScoresURL    string // when set, scores are fetched over HTTP instead of read from ScoresFile
	FetchTimeout time.Duration
	MaxLoads     int // concurrent workbook loads across all boards
}

// ViewConfig holds per-page-view board settings
type ViewConfig struct {
	TTL           time.Duration
	Max           int // live boards kept at once
	SweepInterval time.Duration
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Views:     *loadViewConfig(),
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	publicDir := getEnvOrDefault("PUBLIC_DIR", "./public")
	return &DataConfig{
		PublicDir:    publicDir,
		ScoresFile:   getEnvOrDefault("SCORES_FILE", filepath.Join(publicDir, "scores.xlsx")),
		ScoresURL:    getEnvOrDefault("SCORES_URL", ""),
		FetchTimeout: getEnvDurationOrDefault("FETCH_TIMEOUT", 10*time.Second),
		MaxLoads:     getEnvIntOrDefault("MAX_CONCURRENT_LOADS", 4),
	}
}

func loadViewConfig() *ViewConfig {
	return &ViewConfig{
		TTL:           getEnvDurationOrDefault("VIEW_TTL", 30*time.Minute),
		Max:           getEnvIntOrDefault("MAX_VIEWS", 1000),
		SweepInterval: getEnvDurationOrDefault("VIEW_SWEEP_INTERVAL", time.Minute),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.ScoresFile == "" && config.Data.ScoresURL == "" {
		return errors.ConfigInvalid("either SCORES_FILE or SCORES_URL is required")
	}
	if config.Data.FetchTimeout <= 0 {
		return errors.ConfigInvalid("FETCH_TIMEOUT must be positive")
	}
	if config.Data.MaxLoads < 1 {
		return errors.ConfigInvalid("MAX_CONCURRENT_LOADS must be at least 1")
	}
	if config.Views.TTL <= 0 {
		return errors.ConfigInvalid("VIEW_TTL must be positive")
	}
	if config.Views.Max < 1 {
		return errors.ConfigInvalid("MAX_VIEWS must be at least 1")
	}
	if config.Views.SweepInterval <= 0 {
		return errors.ConfigInvalid("VIEW_SWEEP_INTERVAL must be positive")
	}
	if config.Profiling.Enabled && config.Profiling.Port == config.Server.Port {
		return errors.ConfigInvalid("PPROF_PORT must differ from PORT")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
