package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
)

var _ ports.ChatSender = (*TelegramSender)(nil)

// TelegramSender envía avisos al chat del personal configurado en cada sucursal.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender valida el token contra la API de Telegram (getMe).
func NewTelegramSender(token string) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramSender{api: api}, nil
}

// SendText envía un mensaje de texto plano. La librería no acepta contexto: solo se comprueba antes de enviar.
func (s *TelegramSender) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send chat_id=%d: %w", chatID, err)
	}
	return nil
}
