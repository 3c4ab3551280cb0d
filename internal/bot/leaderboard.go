package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leaderboard.go -destination=mock/leaderboard_mock.go -package=mock_bot

// Telegram rejects messages longer than this many characters.
const maxMessageLen = 4096

type LeaderboardSI interface {
	LeaderboardText(ctx context.Context) (string, error)
}

type LeaderboardT struct {
	bot     BotSender
	service LeaderboardSI
	timeout time.Duration
	log     *zap.Logger
}

func NewLeaderboardTAPI(bot BotSender, service LeaderboardSI, timeout time.Duration, log *zap.Logger) *LeaderboardT {
	return &LeaderboardT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *LeaderboardT) sendLeaderboard(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	text, err := t.service.LeaderboardText(ctx)
	if err != nil {
		t.log.Warn("failed to get leaderboard", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load the leaderboard. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	for _, part := range splitMessage(text, maxMessageLen) {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, part))
	}
}

// splitMessage cuts text into chunks of at most limit runes, breaking on line
// boundaries where possible.
func splitMessage(text string, limit int) []string {
	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var (
		parts   []string
		current strings.Builder
		size    int
	)

	flush := func() {
		if size > 0 {
			parts = append(parts, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)

		for len(runes) > limit {
			flush()
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}

		need := len(runes)
		if size > 0 {
			need++
		}
		if size+need > limit {
			flush()
			need = len(runes)
		}

		if size > 0 {
			current.WriteString("\n")
		}
		current.WriteString(string(runes))
		size += need
	}
	flush()

	return parts
}
