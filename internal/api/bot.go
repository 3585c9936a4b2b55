package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	app "github.com/thwqsz/Bot-ilia/internal/application"
	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/view"
)

const msgAnswerSaved = "Ответ сохранён"

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	survey *app.SurveyService
}

// NewBot создаёт нового бота поверх готового клиента Bot API
func NewBot(api *tgbotapi.BotAPI, survey *app.SurveyService) *Bot {
	return &Bot{
		api:    api,
		survey: survey,
	}
}

// Run запускает основной цикл обработки обновлений.
// Каждое обновление обрабатывается в своей горутине, чтобы медленные
// внешние вызовы одного пользователя не задерживали остальных.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate разводит обновление по типу
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if msg.Contact != nil {
		prompts := b.survey.Contact(ctx, msg.From.ID, entity.Contact{
			Phone:     msg.Contact.PhoneNumber,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		})
		b.send(msg.Chat.ID, prompts...)
		return
	}

	// Сообщения вне сценария молча игнорируются
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, b.survey.Start(ctx, msg.From.ID)...)

	case "whoami":
		b.send(msg.Chat.ID, view.Prompt{Text: b.survey.WhoAmI(msg.From.ID)})

	case "whereami":
		if text, ok := b.survey.WhereAmI(msg.From.ID, msg.Chat.ID); ok {
			b.send(msg.Chat.ID, view.Prompt{Text: text})
		}
	}
}

// handleCallback обрабатывает нажатие inline-кнопки.
// Callback подтверждается всегда, иначе у пользователя зависнут "часики".
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	var prompts []view.Prompt
	saved := false
	if view.IsAnswerToken(cq.Data) {
		saved, prompts = b.survey.Answer(ctx, cq.From.ID, cq.Data)
	}

	ack := ""
	if saved {
		ack = msgAnswerSaved
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, ack)); err != nil {
		log.Error().Err(err).Msg("failed to answer callback query")
	}

	chatID := cq.From.ID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}
	b.send(chatID, prompts...)
}

// send отрисовывает и отправляет сообщения по порядку
func (b *Bot) send(chatID int64, prompts ...view.Prompt) {
	for _, p := range prompts {
		msg := tgbotapi.NewMessage(chatID, p.Text)

		switch {
		case p.RequestContact != "":
			kb := tgbotapi.NewOneTimeReplyKeyboard(
				tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(p.RequestContact)),
			)
			kb.ResizeKeyboard = true
			msg.ReplyMarkup = kb
		case len(p.Options) > 0:
			rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(p.Options))
			for _, opt := range p.Options {
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Token),
				))
			}
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
		case p.RemoveKeyboard:
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		}

		if _, err := b.api.Send(msg); err != nil {
			log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
		}
	}
}
