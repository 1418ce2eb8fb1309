package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FEED_URL", "DATA_FILE", "HISTORY_DB_PATH", "LOG_LEVEL", "LISTEN_ADDR",
		"SYNC_INTERVAL_MINUTES", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		FeedURL:         DefaultFeedURL,
		DataFile:        "./data/deals.json",
		HistoryDBPath:   "./data/history.db",
		LogLevel:        "info",
		SyncIntervalMin: 60,
		ListenAddr:      ":8080",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.NotifyEnabled() {
		t.Error("NotifyEnabled() = true with no telegram settings")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEED_URL", "https://example.com/feed.rss")
	t.Setenv("DATA_FILE", "/var/lib/dealsync/deals.json")
	t.Setenv("SYNC_INTERVAL_MINUTES", "15")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FeedURL != "https://example.com/feed.rss" {
		t.Errorf("FeedURL = %q", cfg.FeedURL)
	}
	if cfg.DataFile != "/var/lib/dealsync/deals.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.SyncIntervalMin != 15 {
		t.Errorf("SyncIntervalMin = %d, want 15", cfg.SyncIntervalMin)
	}
	if cfg.TelegramChatID != -100200300 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}
	if !cfg.NotifyEnabled() {
		t.Error("NotifyEnabled() = false with token and chat id set")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "non-numeric interval",
			env:  map[string]string{"SYNC_INTERVAL_MINUTES": "soon"},
		},
		{
			name: "non-positive interval",
			env:  map[string]string{"SYNC_INTERVAL_MINUTES": "0"},
		},
		{
			name: "bad chat id",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc", "TELEGRAM_CHAT_ID": "not-a-number"},
		},
		{
			name: "token without chat id",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"},
		},
		{
			name: "chat id without token",
			env:  map[string]string{"TELEGRAM_CHAT_ID": "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("Load() error = nil, want error")
			}
		})
	}
}
