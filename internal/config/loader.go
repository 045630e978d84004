package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")               // Current directory
		v.AddConfigPath("./configs")       // Project configs directory
		v.AddConfigPath("/etc/cyclesight") // System-wide config
	}

	// Set defaults
	setDefaults(v)

	// Enable environment variable overrides
	v.SetEnvPrefix("CYCLESIGHT")
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)

	// Provider defaults
	v.SetDefault("provider.base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	v.SetDefault("provider.timeout", "10s")
	v.SetDefault("provider.user_agent", "cyclesight/1.0")

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.url", "redis://localhost:6379")
	v.SetDefault("cache.key_prefix", "cyclesight")
	v.SetDefault("cache.ttl", "15m")

	// Analysis defaults
	v.SetDefault("analysis.min_samples", 32)
	v.SetDefault("analysis.max_samples", 4096)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 8080,
		},
		Provider: ProviderConfig{
			BaseURL:   "https://query1.finance.yahoo.com/v8/finance/chart",
			Timeout:   10 * time.Second,
			UserAgent: "cyclesight/1.0",
		},
		Cache: CacheConfig{
			Enabled:   false,
			URL:       "redis://localhost:6379",
			KeyPrefix: "cyclesight",
			TTL:       15 * time.Minute,
		},
		Analysis: AnalysisConfig{
			MinSamples: 32,
			MaxSamples: 4096,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}
