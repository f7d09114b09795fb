package error_notificator

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewInfra поднимает бота для алертов. Пустой token — алерты отключены.
func NewInfra(token string, adminChatID int64) (*Infra, error) {
	if token == "" {
		return &Infra{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	return &Infra{bot: bot, chatID: adminChatID}, nil
}

func (i *Infra) Notify(ctx context.Context, source string, err error, details string) error {
	if i.bot == nil {
		log.Printf("[error_notificator] %s: %v (%s)", source, err, details)
		return nil
	}

	msg := tgbotapi.NewMessage(i.chatID, FormatAlert(source, err, details))

	_, sendErr := i.bot.Send(msg)
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}

func FormatAlert(source string, err error, details string) string {
	return fmt.Sprintf(
		"❗ Ошибка в сервисе перевода (%s)\n\nОшибка: %v\n\nДетали: %s",
		source,
		err,
		details,
	)
}
