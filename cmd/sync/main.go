// Command sync runs one pass of the deals pipeline: fetch the feed,
// classify, merge into the collection, save, and announce new deals. With
// -daemon it keeps running a pass per configured interval.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dealsync/internal/config"
	"dealsync/internal/notify"
	"dealsync/internal/scheduler"
	"dealsync/internal/store"
)

func main() {
	daemon := flag.Bool("daemon", false, "keep running, one pass per SYNC_INTERVAL_MINUTES")
	flag.Parse()

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

	var notifier scheduler.Notifier
	if cfg.NotifyEnabled() {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Error("create notifier", "error", err)
			os.Exit(1)
		}
		notifier = tg
	}

	sched := scheduler.New(cfg.FeedURL, cfg.DataFile, history, notifier, log)
	sched.SetInterval(time.Duration(cfg.SyncIntervalMin) * time.Minute)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *daemon {
		log.Info("starting sync daemon", "interval_minutes", cfg.SyncIntervalMin)
		sched.Run(ctx)
		log.Info("sync daemon stopped")
		return
	}

	if _, err := sched.RunOnce(ctx, "manual"); err != nil {
		log.Error("sync pass", "error", err)
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
