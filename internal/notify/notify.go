// Package notify announces newly merged deals over Telegram.
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dealsync/internal/model"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends one message per newly added deal to a configured chat.
type Telegram struct {
	api    telegramAPI
	chatID int64
	log    *slog.Logger
}

// NewTelegram creates a Telegram notifier with the given bot token and chat.
func NewTelegram(token string, chatID int64, log *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// AnnounceDeals sends one message per deal, in order.
func (t *Telegram) AnnounceDeals(deals []model.Deal) {
	for _, d := range deals {
		msg := tgbotapi.NewMessage(t.chatID, FormatDeal(d))
		msg.DisableWebPagePreview = true
		if _, err := t.api.Send(msg); err != nil {
			t.log.Error("send announcement", "deal_id", d.ID, "error", err)
		}
		// Rate limit: ~20 messages/sec max for Telegram
		time.Sleep(50 * time.Millisecond)
	}
}

// FormatDeal formats a deal as a plain-text announcement message.
func FormatDeal(d model.Deal) string {
	var b strings.Builder
	if d.SubCategory != "" {
		fmt.Fprintf(&b, "[%s / %s]\n\n", d.MainCategory, d.SubCategory)
	} else {
		fmt.Fprintf(&b, "[%s]\n\n", d.MainCategory)
	}
	b.WriteString(d.Title)
	if d.SalePrice != "" || d.Store != "" {
		b.WriteString("\n\n")
		switch {
		case d.SalePrice != "" && d.Store != "":
			fmt.Fprintf(&b, "%s at %s", d.SalePrice, d.Store)
		case d.SalePrice != "":
			b.WriteString(d.SalePrice)
		default:
			b.WriteString(d.Store)
		}
	}
	if d.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Link)
	}
	return b.String()
}
