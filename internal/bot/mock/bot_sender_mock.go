package mock_bot

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Fail         bool
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.Fail {
		return tgbotapi.Message{}, errors.New("send failed")
	}
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
