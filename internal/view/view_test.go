package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

func testBank(t *testing.T) *entity.Bank {
	t.Helper()
	bank, err := entity.NewBank(entity.DefaultQuestions())
	require.NoError(t, err)
	return bank
}

func TestGreeting(t *testing.T) {
	p := Greeting(5)
	require.Contains(t, p.Text, "5 коротких вопросов")
	require.NotEmpty(t, p.RequestContact)
	require.Empty(t, p.Options)
}

func TestQuestionPrompt(t *testing.T) {
	bank := testBank(t)
	p := QuestionPrompt(bank, 1)

	require.Contains(t, p.Text, "Вопрос 2/5")
	require.Contains(t, p.Text, bank.Question(1).Text)
	require.Len(t, p.Options, len(bank.Question(1).Options))
	for i, opt := range p.Options {
		require.Equal(t, bank.Question(1).Options[i], opt.Label)
		require.Equal(t, AnswerToken(1, i), opt.Token)
	}
}

func TestContactAccepted_RemovesKeyboard(t *testing.T) {
	p := ContactAccepted()
	require.True(t, p.RemoveKeyboard)
}

func TestClosing(t *testing.T) {
	p := Closing("https://t.me/+abc")
	require.Contains(t, p.Text, "https://t.me/+abc")
}
