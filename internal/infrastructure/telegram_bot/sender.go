package telegram_bot

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Telegram rejects messages longer than 4096 characters.
const textLimit = 4000

type Sender struct {
	bot *tele.Bot
}

// New builds a send-only bot. apiURL overrides the Bot API base URL when set.
// The bot is created offline: no getMe round-trip, so a bad token surfaces on
// the first Send.
func New(token string, timeout time.Duration, apiURL string) (*Sender, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	b, err := tele.NewBot(tele.Settings{
		URL:     strings.TrimRight(apiURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
		Offline: true,
	})
	if err != nil {
		return nil, err
	}
	return &Sender{bot: b}, nil
}

type chat string

func (c chat) Recipient() string { return string(c) }

func (s *Sender) Send(ctx context.Context, chatID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.bot.Send(chat(chatID), truncate(text, textLimit), &tele.SendOptions{DisableWebPagePreview: true})
	return err
}

func truncate(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit-1]) + "…"
}
