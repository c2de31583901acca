package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/refdata")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ServerPort != "8090" {
		t.Errorf("ServerPort = %q, want 8090", cfg.ServerPort)
	}
	if !cfg.AuthHeaderFallback {
		t.Error("AuthHeaderFallback should default to true")
	}
	if cfg.RateLimitPerMinute != 600 {
		t.Errorf("RateLimitPerMinute = %d, want 600", cfg.RateLimitPerMinute)
	}
	if cfg.ImportExchange != "assignment_import" || cfg.ImportQueue != "pup_assignment_import" {
		t.Errorf("import defaults = %q/%q", cfg.ImportExchange, cfg.ImportQueue)
	}
	if cfg.ImportRoutingKey != "assignment.csv.row" {
		t.Errorf("ImportRoutingKey = %q", cfg.ImportRoutingKey)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/refdata")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerPort != "9999" {
		t.Errorf("ServerPort = %q, want 9999", cfg.ServerPort)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("RateLimitPerMinute = %d, want 60", cfg.RateLimitPerMinute)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() without DATABASE_URL should fail")
	}
}
