// Package invite выпускает одноразовые ссылки-приглашения в закрытый чат.
package invite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

// Issuer создаёт через Bot API ссылку-приглашение в чат chatID:
// на одного участника, со сроком действия ttl от момента выпуска.
type Issuer struct {
	api    *tgbotapi.BotAPI
	chatID int64
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer создаёт выпускающего. chatID == 0 означает,
// что целевой чат не настроен: Issue будет возвращать ошибку.
func NewIssuer(api *tgbotapi.BotAPI, chatID int64, ttl time.Duration) *Issuer {
	return &Issuer{
		api:    api,
		chatID: chatID,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue создаёт одноразовую ссылку для пользователя userID
func (i *Issuer) Issue(ctx context.Context, userID int64) (string, error) {
	if i.chatID == 0 {
		return "", fmt.Errorf("target chat is not configured")
	}

	now := i.now()
	cfg := tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:  tgbotapi.ChatConfig{ChatID: i.chatID},
		Name:        fmt.Sprintf("bp-%d-%s", userID, now.Format("20060102")),
		ExpireDate:  int(now.Add(i.ttl).Unix()),
		MemberLimit: 1,
	}

	resp, err := i.api.Request(cfg)
	if err != nil {
		return "", fmt.Errorf("create invite link: %w", err)
	}

	var link tgbotapi.ChatInviteLink
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return "", fmt.Errorf("decode invite link: %w", err)
	}
	if link.InviteLink == "" {
		return "", fmt.Errorf("empty invite link in response")
	}
	return link.InviteLink, nil
}

// Проверка реализации интерфейса
var _ port.CredentialIssuer = (*Issuer)(nil)
