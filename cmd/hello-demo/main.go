// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"log"
	"log/slog"
	"os"

	"hello-demo/internal/config"
	"hello-demo/internal/demo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if err := demo.Run(os.Stdout, cfg); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// setupLogging configures structured logging on stderr. Stdout carries
// the demo output, so diagnostics never mix with it.
func setupLogging(cfg *config.Config) {
	format := cfg.Logging.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	opts := &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
