// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultFeedURL is the frontpage deals feed polled by the sync pass.
const DefaultFeedURL = "https://slickdeals.net/newsearch.php?mode=frontpage&searcharea=deals&searchin=first&rss=1"

// Config holds the application configuration.
type Config struct {
	FeedURL          string
	DataFile         string
	HistoryDBPath    string
	LogLevel         string
	SyncIntervalMin  int
	ListenAddr       string
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		FeedURL:          envOrDefault("FEED_URL", DefaultFeedURL),
		DataFile:         envOrDefault("DATA_FILE", "./data/deals.json"),
		HistoryDBPath:    envOrDefault("HISTORY_DB_PATH", "./data/history.db"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		ListenAddr:       envOrDefault("LISTEN_ADDR", ":8080"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	cfg.SyncIntervalMin = 60
	if raw := os.Getenv("SYNC_INTERVAL_MINUTES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SYNC_INTERVAL_MINUTES %q", raw)
		}
		cfg.SyncIntervalMin = n
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = id
	}

	if (cfg.TelegramBotToken == "") != (cfg.TelegramChatID == 0) {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}

	return cfg, nil
}

// NotifyEnabled reports whether Telegram announcements are configured.
func (c *Config) NotifyEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
