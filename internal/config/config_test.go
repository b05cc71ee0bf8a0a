package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SIFT_PORT", "LOG_LEVEL", "NATS_URL", "NATS_TOKEN",
		"SIFT_PATTERNS_FILE", "SIFT_API_TOKEN", "SIFT_MAX_INPUT_BYTES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8760 {
		t.Errorf("expected default port 8760, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.NatsURL != "" {
		t.Errorf("expected NATS disabled by default, got %s", cfg.NatsURL)
	}
	if cfg.PatternsFile != "" {
		t.Errorf("expected no patterns file by default, got %s", cfg.PatternsFile)
	}
	if cfg.APIToken != "" {
		t.Errorf("expected empty default api token, got %s", cfg.APIToken)
	}
	if cfg.MaxInputBytes != 1<<20 {
		t.Errorf("expected default input bound 1 MiB, got %d", cfg.MaxInputBytes)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("SIFT_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NATS_URL", "nats://custom:4222")
	t.Setenv("NATS_TOKEN", "s3cr3t-token")
	t.Setenv("SIFT_PATTERNS_FILE", "/etc/sift/patterns.yml")
	t.Setenv("SIFT_API_TOKEN", "sift-secret-token")
	t.Setenv("SIFT_MAX_INPUT_BYTES", "4096")

	cfg := Load()

	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.NatsURL != "nats://custom:4222" {
		t.Errorf("expected custom nats url, got %s", cfg.NatsURL)
	}
	if cfg.NatsToken != "s3cr3t-token" {
		t.Errorf("expected custom nats token, got %s", cfg.NatsToken)
	}
	if cfg.PatternsFile != "/etc/sift/patterns.yml" {
		t.Errorf("expected custom patterns file, got %s", cfg.PatternsFile)
	}
	if cfg.APIToken != "sift-secret-token" {
		t.Errorf("expected custom api token, got %s", cfg.APIToken)
	}
	if cfg.MaxInputBytes != 4096 {
		t.Errorf("expected custom input bound, got %d", cfg.MaxInputBytes)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SIFT_PORT", "notanumber")

	cfg := Load()

	if cfg.Port != 8760 {
		t.Errorf("expected default port on invalid value, got %d", cfg.Port)
	}
}
