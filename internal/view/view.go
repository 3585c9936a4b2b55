// Package view собирает готовые к отправке сообщения из намерений контроллера.
// Пакет не знает про Telegram API: транспортный слой сам решает,
// как отрисовать Prompt.
package view

import (
	"fmt"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

const (
	msgGreeting = "Привет! Это бот проекта «Бизнес-Погружение».\n\n" +
		"Чтобы присоединиться к закрытому комьюнити, отправьте свой контакт и ответьте на %d коротких вопросов."
	msgContactButton = "📱 Отправить контакт"
	msgUseButton     = "Пожалуйста, используйте кнопку ниже, чтобы отправить контакт."
	msgContactSaved  = "Спасибо! Начинаем тест."
	msgNextQuestion  = "Ок!"
	msgQuestion      = "Вопрос %d/%d\n\n%s"
	msgClosing       = "Готово! Вот ссылка для входа в закрытое комьюнити:\n%s"
)

// Option одна inline-кнопка с вариантом ответа
type Option struct {
	Label string
	Token string
}

// Prompt сообщение пользователю вместе с клавиатурой
type Prompt struct {
	Text           string
	RequestContact string   // подпись reply-кнопки запроса контакта, если не пустая
	Options        []Option // inline-кнопки с вариантами ответа
	RemoveKeyboard bool     // убрать reply-клавиатуру
}

// Greeting приветствие с кнопкой запроса контакта
func Greeting(questionCount int) Prompt {
	return Prompt{
		Text:           fmt.Sprintf(msgGreeting, questionCount),
		RequestContact: msgContactButton,
	}
}

// ContactReprompt повторный запрос контакта при сообщении без телефона
func ContactReprompt() Prompt {
	return Prompt{
		Text:           msgUseButton,
		RequestContact: msgContactButton,
	}
}

// ContactAccepted подтверждение приёма контакта, убирает reply-клавиатуру
func ContactAccepted() Prompt {
	return Prompt{Text: msgContactSaved, RemoveKeyboard: true}
}

// NextQuestionAck короткое сообщение между вопросами
func NextQuestionAck() Prompt {
	return Prompt{Text: msgNextQuestion}
}

// QuestionPrompt вопрос под номером index с кнопкой на каждый вариант
func QuestionPrompt(bank *entity.Bank, index int) Prompt {
	q := bank.Question(index)
	opts := make([]Option, len(q.Options))
	for i, label := range q.Options {
		opts[i] = Option{Label: label, Token: AnswerToken(index, i)}
	}
	return Prompt{
		Text:    fmt.Sprintf(msgQuestion, index+1, bank.Count(), q.Text),
		Options: opts,
	}
}

// Closing финальное сообщение со ссылкой на вход
func Closing(link string) Prompt {
	return Prompt{Text: fmt.Sprintf(msgClosing, link)}
}
