package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/sift/internal/api"
	"github.com/MikeSquared-Agency/sift/internal/bus"
	"github.com/MikeSquared-Agency/sift/internal/config"
	"github.com/MikeSquared-Agency/sift/internal/extract"
	"github.com/MikeSquared-Agency/sift/internal/metrics"
	"github.com/MikeSquared-Agency/sift/internal/patterns"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("sift starting", "port", cfg.Port)

	// Pattern library, with optional operator keyword additions.
	var ov *patterns.Overrides
	if cfg.PatternsFile != "" {
		loaded, err := patterns.LoadOverrides(cfg.PatternsFile)
		if err != nil {
			slog.Error("failed to load patterns file", "path", cfg.PatternsFile, "error", err)
			os.Exit(1)
		}
		ov = loaded
		slog.Info("pattern overrides loaded", "path", cfg.PatternsFile)
	}
	lib, err := patterns.Build(ov)
	if err != nil {
		slog.Error("failed to build pattern library", "error", err)
		os.Exit(1)
	}

	engine := extract.New(lib)
	m := metrics.New()

	// NATS adapter (optional — sift works without a broker, HTTP only).
	if cfg.NatsURL != "" {
		busClient, err := bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer busClient.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)

		responder := bus.NewResponder(busClient, engine, m, cfg.MaxInputBytes, slog.Default())
		if err := responder.Start(); err != nil {
			slog.Error("failed to subscribe extraction subjects", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("NATS not configured — serving HTTP only")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, engine, m, cfg.MaxInputBytes)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("sift ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("sift stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
