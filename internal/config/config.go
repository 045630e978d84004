package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// ProviderConfig represents upstream price-provider configuration
type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`   // Chart API base URL
	Timeout   time.Duration `mapstructure:"timeout"`    // Per-request timeout
	UserAgent string        `mapstructure:"user_agent"` // Sent with every upstream request
}

// CacheConfig represents the fetched-series cache configuration
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`    // Enable the Redis series cache
	URL       string        `mapstructure:"url"`        // Redis URL (e.g., redis://localhost:6379)
	Password  string        `mapstructure:"password"`   // Optional authentication
	DB        int           `mapstructure:"db"`         // Redis database number (default: 0)
	KeyPrefix string        `mapstructure:"key_prefix"` // Cache key prefix (default: "cyclesight")
	TTL       time.Duration `mapstructure:"ttl"`        // How long fetched series stay cached
}

// AnalysisConfig represents spectral-analysis policy configuration.
// These are caller-side policies; the analysis engine itself accepts
// any series.
type AnalysisConfig struct {
	MinSamples int `mapstructure:"min_samples"` // Reject series shorter than this (default: 32)
	MaxSamples int `mapstructure:"max_samples"` // Truncate fetched series beyond this (direct DFT is O(n²))
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Provider.Validate(); err != nil {
		return fmt.Errorf("provider config: %w", err)
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}

	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates provider configuration
func (c *ProviderConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}

// Validate validates cache configuration
func (c *CacheConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.URL == "" {
		return fmt.Errorf("cache.url is required when cache is enabled")
	}

	if c.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}

	return nil
}

// Validate validates analysis configuration
func (c *AnalysisConfig) Validate() error {
	if c.MinSamples < 2 {
		return fmt.Errorf("analysis.min_samples must be at least 2")
	}

	if c.MaxSamples > 0 && c.MaxSamples < c.MinSamples {
		return fmt.Errorf("analysis.max_samples cannot be below analysis.min_samples")
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
