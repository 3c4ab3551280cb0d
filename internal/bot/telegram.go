package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	send  BotSender
	board *LeaderboardT
	log   *zap.Logger
}

func NewTelegramAPI(botToken, env string, service LeaderboardSI, timeout time.Duration, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	t := newTelegramAPI(bot, service, timeout, log)
	t.bot = bot

	return t, nil
}

func newTelegramAPI(sender BotSender, service LeaderboardSI, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		send:  sender,
		board: NewLeaderboardTAPI(sender, service, timeout, log),
		log:   log,
	}
}

// Start consumes updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		t.bot.StopReceivingUpdates()
	}()

	for update := range updates {
		t.handleUpdate(update)
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		t.handleCommand(update.Message)
	} else {
		t.handleMessage(update.Message)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
