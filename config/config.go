package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Matcher MatcherConfig
	AI      AIConfig
	Audit   AuditConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatcherConfig holds the deterministic resolver's policy constants
type MatcherConfig struct {
	HighScore          float64 `mapstructure:"high_score"`
	HighMargin         float64 `mapstructure:"high_margin"`
	MediumScore        float64 `mapstructure:"medium_score"`
	MediumMargin       float64 `mapstructure:"medium_margin"`
	MaxAICandidates    int     `mapstructure:"max_ai_candidates"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// AIConfig holds the disambiguation classifier configuration
type AIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// AuditConfig holds audit sink configuration
type AuditConfig struct {
	Backend     string `mapstructure:"backend"` // "memory" or "postgres"
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lensmatch/")

	// Environment variable settings
	v.SetEnvPrefix("LENSMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Matcher defaults (validated by the resolution scenario tests)
	v.SetDefault("matcher.high_score", 30.0)
	v.SetDefault("matcher.high_margin", 10.0)
	v.SetDefault("matcher.medium_score", 20.0)
	v.SetDefault("matcher.medium_margin", 5.0)
	v.SetDefault("matcher.max_ai_candidates", 15)

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.base_url", "https://api.openai.com")
	v.SetDefault("ai.model", "gpt-4o-mini")

	// Audit defaults
	v.SetDefault("audit.backend", "memory")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Audit.Backend != "memory" && config.Audit.Backend != "postgres" {
		return fmt.Errorf("audit backend must be 'memory' or 'postgres', got: %s", config.Audit.Backend)
	}

	if config.Audit.Backend == "postgres" && config.Audit.PostgresDSN == "" {
		return fmt.Errorf("Postgres DSN is required when audit backend is 'postgres'")
	}

	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("AI API key is required when the classifier is enabled (set LENSMATCH_AI_API_KEY)")
	}

	if config.Matcher.MaxAICandidates < 0 {
		return fmt.Errorf("matcher.max_ai_candidates must not be negative")
	}

	return nil
}
