package entity

import "time"

// State состояние пользователя в диалоге
type State string

const (
	StateAwaitingContact State = "awaiting_contact" // Ожидание контакта пользователя
	StateInTest          State = "in_test"          // Прохождение теста
	StateCompleted       State = "completed"        // Тест завершён, выполняются финальные действия
)

// Contact данные, которые пользователь передаёт вместе с контактом
type Contact struct {
	Phone     string
	Username  string
	FirstName string
	LastName  string
}

// Session представляет диалог одного пользователя от /start до выдачи ссылки.
// Сессия существует только пока пользователь в процессе: нет сессии — нет диалога.
type Session struct {
	UserID int64 // Telegram User ID
	State  State

	// Данные контакта, заполняются один раз при переходе в StateInTest
	Username  string
	FirstName string
	LastName  string
	Phone     string

	Answers         []string // выбранные варианты, по одному слоту на вопрос
	CurrentQuestion int      // индекс вопроса, ожидающего ответа

	LastActivity time.Time // для вытеснения брошенных сессий
}

// NewSession создаёт сессию в начальном состоянии с пустыми ответами
func NewSession(userID int64, questionCount int, now time.Time) *Session {
	return &Session{
		UserID:       userID,
		State:        StateAwaitingContact,
		Answers:      make([]string, questionCount),
		LastActivity: now,
	}
}

// SetContact заполняет данные контакта и переводит сессию к первому вопросу.
// Вызывается ровно один раз; при пустом телефоне возвращает ErrNoPhone.
func (s *Session) SetContact(c Contact) error {
	if c.Phone == "" {
		return ErrNoPhone
	}
	s.Username = c.Username
	s.FirstName = c.FirstName
	s.LastName = c.LastName
	s.Phone = c.Phone
	s.State = StateInTest
	s.CurrentQuestion = 0
	return nil
}

// RecordAnswer сохраняет выбранный вариант для текущего вопроса.
// Токен с чужим индексом вопроса (устаревшая кнопка) отклоняется.
func (s *Session) RecordAnswer(question int, label string) error {
	if s.State != StateInTest {
		return ErrWrongState
	}
	if question != s.CurrentQuestion {
		return ErrStaleAnswer
	}
	s.Answers[question] = label
	return nil
}

// Advance переводит сессию к следующему вопросу или в StateCompleted,
// если вопросов больше нет. CurrentQuestion никогда не уменьшается.
func (s *Session) Advance() {
	if s.CurrentQuestion+1 < len(s.Answers) {
		s.CurrentQuestion++
		return
	}
	s.State = StateCompleted
}

// Touch обновляет отметку последней активности
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}
