package port

import (
	"context"
	"time"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Get возвращает сессию пользователя или entity.ErrSessionNotFound
	Get(ctx context.Context, userID int64) (*entity.Session, error)

	// Put сохраняет сессию, перезаписывая существующую
	Put(ctx context.Context, session *entity.Session) error

	// Delete удаляет сессию пользователя; отсутствие сессии не ошибка
	Delete(ctx context.Context, userID int64) error

	// DeleteIdle удаляет сессии без активности после отметки cutoff
	// и возвращает число удалённых
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
}
