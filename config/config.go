package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/grocyhq/go-grocy/api"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".go-grocy"))
		}

		// Check /etc
		v.AddConfigPath("/etc/go-grocy/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Grocy defaults
	v.SetDefault("grocy.port", api.DefaultPort)
	v.SetDefault("grocy.verify_tls", true)
	v.SetDefault("grocy.timeout_seconds", 30)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Grocy.URL == "" {
		return fmt.Errorf("grocy.url is required")
	}

	if cfg.Grocy.APIKey == "" || cfg.Grocy.APIKey == "your-api-key-here" {
		return fmt.Errorf("grocy.api_key must be set to a valid API key")
	}

	if cfg.Grocy.Port <= 0 || cfg.Grocy.Port > 65535 {
		return fmt.Errorf("invalid grocy.port: %d", cfg.Grocy.Port)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions translates the connection settings into transport client
// options.
func (c *GrocyConfig) ClientOptions() []api.Option {
	opts := []api.Option{}
	if c.Port != 0 {
		opts = append(opts, api.WithPort(c.Port))
	}
	if c.Path != "" {
		opts = append(opts, api.WithPath(c.Path))
	}
	if c.TimeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(c.TimeoutSeconds)*time.Second))
	}
	if !c.VerifyTLS {
		opts = append(opts, api.WithInsecureSkipVerify())
	}
	return opts
}
