package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("LENSMATCH_SERVER_PORT")
		os.Unsetenv("LENSMATCH_SERVER_ENVIRONMENT")
		os.Unsetenv("LENSMATCH_MATCHER_HIGH_SCORE")
		os.Unsetenv("LENSMATCH_MATCHER_MAX_AI_CANDIDATES")
		os.Unsetenv("LENSMATCH_AI_ENABLED")
		os.Unsetenv("LENSMATCH_AI_API_KEY")
		os.Unsetenv("LENSMATCH_AI_MODEL")
		os.Unsetenv("LENSMATCH_AUDIT_BACKEND")
		os.Unsetenv("LENSMATCH_AUDIT_POSTGRES_DSN")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matcher.HighScore != 30.0 || cfg.Matcher.HighMargin != 10.0 {
			t.Errorf("Matcher high cutoffs = %v/%v, want 30/10", cfg.Matcher.HighScore, cfg.Matcher.HighMargin)
		}
		if cfg.Matcher.MediumScore != 20.0 || cfg.Matcher.MediumMargin != 5.0 {
			t.Errorf("Matcher medium cutoffs = %v/%v, want 20/5", cfg.Matcher.MediumScore, cfg.Matcher.MediumMargin)
		}
		if cfg.Matcher.MaxAICandidates != 15 {
			t.Errorf("Matcher.MaxAICandidates = %d, want 15", cfg.Matcher.MaxAICandidates)
		}
		if cfg.AI.Enabled {
			t.Error("AI.Enabled = true, want false by default")
		}
		if cfg.AI.BaseURL != "https://api.openai.com" {
			t.Errorf("AI.BaseURL = %s, want https://api.openai.com", cfg.AI.BaseURL)
		}
		if cfg.AI.Model != "gpt-4o-mini" {
			t.Errorf("AI.Model = %s, want gpt-4o-mini", cfg.AI.Model)
		}
		if cfg.Audit.Backend != "memory" {
			t.Errorf("Audit.Backend = %s, want memory", cfg.Audit.Backend)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSMATCH_SERVER_PORT", "9090")
		os.Setenv("LENSMATCH_SERVER_ENVIRONMENT", "production")
		os.Setenv("LENSMATCH_MATCHER_HIGH_SCORE", "45")
		os.Setenv("LENSMATCH_MATCHER_MAX_AI_CANDIDATES", "20")
		os.Setenv("LENSMATCH_AI_ENABLED", "true")
		os.Setenv("LENSMATCH_AI_API_KEY", "test-api-key")
		os.Setenv("LENSMATCH_AI_MODEL", "gpt-4o")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matcher.HighScore != 45.0 {
			t.Errorf("Matcher.HighScore = %v, want 45", cfg.Matcher.HighScore)
		}
		if cfg.Matcher.MaxAICandidates != 20 {
			t.Errorf("Matcher.MaxAICandidates = %d, want 20", cfg.Matcher.MaxAICandidates)
		}
		if !cfg.AI.Enabled {
			t.Error("AI.Enabled = false, want true")
		}
		if cfg.AI.APIKey != "test-api-key" {
			t.Errorf("AI.APIKey = %s, want test-api-key", cfg.AI.APIKey)
		}
		if cfg.AI.Model != "gpt-4o" {
			t.Errorf("AI.Model = %s, want gpt-4o", cfg.AI.Model)
		}
	})

	t.Run("fails validation when AI enabled without API key", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSMATCH_AI_ENABLED", "true")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing AI API key")
		}
	})

	t.Run("fails validation for invalid audit backend", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSMATCH_AUDIT_BACKEND", "kafka")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid audit backend")
		}
	})

	t.Run("fails validation when postgres DSN missing for postgres backend", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSMATCH_AUDIT_BACKEND", "postgres")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Postgres DSN")
		}
	})

	t.Run("accepts postgres backend with DSN", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSMATCH_AUDIT_BACKEND", "postgres")
		os.Setenv("LENSMATCH_AUDIT_POSTGRES_DSN", "host=localhost user=lensmatch dbname=lensmatch")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Audit.Backend != "postgres" {
			t.Errorf("Audit.Backend = %s, want postgres", cfg.Audit.Backend)
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Matcher: MatcherConfig{MaxAICandidates: 15},
			Audit:   AuditConfig{Backend: "memory"},
		}
	}

	t.Run("validates successfully with defaults", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for unknown audit backend", func(t *testing.T) {
		cfg := base()
		cfg.Audit.Backend = "sqlite"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for unknown audit backend")
		}
	})

	t.Run("fails for postgres backend without DSN", func(t *testing.T) {
		cfg := base()
		cfg.Audit.Backend = "postgres"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for missing DSN")
		}
	})

	t.Run("fails for enabled AI without key", func(t *testing.T) {
		cfg := base()
		cfg.AI.Enabled = true
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for missing API key")
		}
	})

	t.Run("fails for negative AI candidate cap", func(t *testing.T) {
		cfg := base()
		cfg.Matcher.MaxAICandidates = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative cap")
		}
	})
}
