package config

// Config represents the complete configuration structure
type Config struct {
	Grocy   GrocyConfig   `mapstructure:"grocy"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GrocyConfig holds Grocy API connection details
type GrocyConfig struct {
	URL            string `mapstructure:"url"`
	APIKey         string `mapstructure:"api_key"`
	Port           int    `mapstructure:"port"`
	Path           string `mapstructure:"path"`
	VerifyTLS      bool   `mapstructure:"verify_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
