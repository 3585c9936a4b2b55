package storage

import (
	"context"
	"sync"
	"time"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий.
// Состояние живёт только в памяти процесса: рестарт молча
// сбрасывает незавершённые диалоги.
//
// Отметка активности хранится отдельно под замком хранилища:
// свипер не читает поля *entity.Session, которые контроллер
// мутирует под своим пользовательским замком.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
	activity map[int64]time.Time
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
		activity: make(map[int64]time.Time),
	}
}

// Get возвращает сессию пользователя или entity.ErrSessionNotFound
func (r *MemorySessionRepository) Get(ctx context.Context, userID int64) (*entity.Session, error) {
	r.mu.RLock()
	sess, exists := r.sessions[userID]
	r.mu.RUnlock()

	if !exists {
		return nil, entity.ErrSessionNotFound
	}
	return sess, nil
}

// Put сохраняет сессию, перезаписывая существующую,
// и фиксирует её отметку активности
func (r *MemorySessionRepository) Put(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.UserID] = session
	r.activity[session.UserID] = session.LastActivity
	r.mu.Unlock()

	return nil
}

// Delete удаляет сессию пользователя
func (r *MemorySessionRepository) Delete(ctx context.Context, userID int64) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	delete(r.activity, userID)
	r.mu.Unlock()

	return nil
}

// DeleteIdle удаляет сессии без активности после отметки cutoff
func (r *MemorySessionRepository) DeleteIdle(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, last := range r.activity {
		if last.Before(cutoff) {
			delete(r.sessions, userID)
			delete(r.activity, userID)
			removed++
		}
	}
	return removed, nil
}

// Len возвращает число активных сессий
func (r *MemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
