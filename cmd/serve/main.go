// Command serve exposes the saved deal collection over a read-only HTTP API
// with health and Prometheus endpoints.
package main

import (
	"log/slog"
	"os"
	"strings"

	"dealsync/internal/config"
	"dealsync/internal/server"
	"dealsync/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	history, err := store.OpenHistory(cfg.HistoryDBPath)
	if err != nil {
		log.Error("open history db", "path", cfg.HistoryDBPath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = history.Close() }()

	srv := server.New(cfg.DataFile, history, log)
	if err := srv.Run(cfg.ListenAddr); err != nil {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
