package config

import (
	"os"
	"strconv"
)

// defaultMaxInput bounds request text size at the adapter boundary.
const defaultMaxInput = 1 << 20 // 1 MiB

type Config struct {
	Port          int
	LogLevel      string
	NatsURL       string
	NatsToken     string
	PatternsFile  string
	APIToken      string
	MaxInputBytes int
}

func Load() Config {
	return Config{
		Port:          envInt("SIFT_PORT", 8760),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		NatsURL:       envStr("NATS_URL", ""),
		NatsToken:     envStr("NATS_TOKEN", ""),
		PatternsFile:  envStr("SIFT_PATTERNS_FILE", ""),
		APIToken:      envStr("SIFT_API_TOKEN", ""),
		MaxInputBytes: envInt("SIFT_MAX_INPUT_BYTES", defaultMaxInput),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
