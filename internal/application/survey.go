package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
	"github.com/thwqsz/Bot-ilia/internal/view"
)

// SurveyService управляет сценарием анкеты: контакт, вопросы по порядку,
// запись анкеты и выдача ссылки-приглашения. События одного пользователя
// обрабатываются строго последовательно, разные пользователи независимы.
type SurveyService struct {
	bank         *entity.Bank
	sessions     port.SessionRepository
	credentials  port.CredentialIssuer
	transcripts  port.TranscriptSink
	ownerID      int64
	fallbackLink string
	loc          *time.Location

	now   func() time.Time
	locks *lockTable
}

// NewSurveyService создаёт контроллер диалога
func NewSurveyService(
	bank *entity.Bank,
	sessions port.SessionRepository,
	credentials port.CredentialIssuer,
	transcripts port.TranscriptSink,
	ownerID int64,
	fallbackLink string,
	loc *time.Location,
) *SurveyService {
	if loc == nil {
		loc = time.UTC
	}
	return &SurveyService{
		bank:         bank,
		sessions:     sessions,
		credentials:  credentials,
		transcripts:  transcripts,
		ownerID:      ownerID,
		fallbackLink: fallbackLink,
		loc:          loc,
		now:          time.Now,
		locks:        newLockTable(),
	}
}

// lockUser сериализует обработку событий одного пользователя
func (s *SurveyService) lockUser(userID int64) func() {
	return s.locks.Acquire(userID)
}

// Start безусловно сбрасывает сессию и начинает сценарий заново.
// Прежний прогресс пользователя при этом теряется.
func (s *SurveyService) Start(ctx context.Context, userID int64) []view.Prompt {
	defer s.lockUser(userID)()

	sess := entity.NewSession(userID, s.bank.Count(), s.now())
	if err := s.sessions.Put(ctx, sess); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to store session")
	}
	return []view.Prompt{view.Greeting(s.bank.Count())}
}

// Contact принимает контакт пользователя и выдаёт первый вопрос.
// Без сессии в состоянии ожидания контакта событие игнорируется;
// контакт без телефона приводит к повторному запросу без смены состояния.
func (s *SurveyService) Contact(ctx context.Context, userID int64, c entity.Contact) []view.Prompt {
	defer s.lockUser(userID)()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil || sess.State != entity.StateAwaitingContact {
		return nil
	}
	if err := sess.SetContact(c); err != nil {
		return []view.Prompt{view.ContactReprompt()}
	}
	sess.Touch(s.now())
	if err := s.sessions.Put(ctx, sess); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to store session")
	}
	return []view.Prompt{view.ContactAccepted(), view.QuestionPrompt(s.bank, 0)}
}

// Answer обрабатывает нажатие кнопки с вариантом ответа.
// Возвращает признак того, что ответ принят, и следующие сообщения.
// Непарсимый, устаревший или выходящий за границы токен — тихий no-op:
// callback всё равно подтверждается, но сессия не меняется.
func (s *SurveyService) Answer(ctx context.Context, userID int64, token string) (bool, []view.Prompt) {
	defer s.lockUser(userID)()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil || sess.State != entity.StateInTest {
		return false, nil
	}

	question, option, err := view.ParseAnswerToken(token)
	if err != nil {
		return false, nil
	}
	if question >= s.bank.Count() || option >= len(s.bank.Question(question).Options) {
		return false, nil
	}
	if err := sess.RecordAnswer(question, s.bank.Question(question).Options[option]); err != nil {
		if !errors.Is(err, entity.ErrStaleAnswer) {
			log.Warn().Err(err).Int64("user_id", userID).Msg("answer rejected")
		}
		return false, nil
	}
	sess.Advance()
	sess.Touch(s.now())

	if sess.State == entity.StateCompleted {
		return true, s.complete(ctx, sess)
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to store session")
	}
	return true, []view.Prompt{view.NextQuestionAck(), view.QuestionPrompt(s.bank, sess.CurrentQuestion)}
}

// complete выполняет финальные действия: запись анкеты, выпуск ссылки,
// прощальное сообщение и удаление сессии. Отказ журнала или выпуска ссылки
// не прерывает завершение — пользователь всегда получает рабочую ссылку.
func (s *SurveyService) complete(ctx context.Context, sess *entity.Session) []view.Prompt {
	row := entity.TranscriptRow{
		Timestamp: s.now().In(s.loc),
		UserID:    sess.UserID,
		Username:  sess.Username,
		FirstName: sess.FirstName,
		LastName:  sess.LastName,
		Phone:     sess.Phone,
		Answers:   append([]string(nil), sess.Answers...),
	}
	if err := s.transcripts.Append(ctx, row); err != nil {
		log.Error().Err(err).Int64("user_id", sess.UserID).Msg("failed to append transcript row")
	}

	link, err := s.credentials.Issue(ctx, sess.UserID)
	if err != nil || link == "" {
		log.Error().Err(err).Int64("user_id", sess.UserID).Msg("invite link issue failed, using fallback")
		link = s.fallbackLink
	}

	if err := s.sessions.Delete(ctx, sess.UserID); err != nil {
		log.Error().Err(err).Int64("user_id", sess.UserID).Msg("failed to delete session")
	}
	return []view.Prompt{view.Closing(link)}
}

// WhoAmI возвращает идентификатор отправителя, доступно всем
func (s *SurveyService) WhoAmI(userID int64) string {
	return fmt.Sprintf("Ваш user_id: %d", userID)
}

// WhereAmI возвращает идентификатор чата, но только владельцу бота.
// Для остальных команда молча игнорируется.
func (s *SurveyService) WhereAmI(callerID, chatID int64) (string, bool) {
	if callerID != s.ownerID {
		return "", false
	}
	return fmt.Sprintf("chat_id: %d", chatID), true
}
