package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

func TestMemorySessionRepository_GetPutDelete(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	require.ErrorIs(t, err, entity.ErrSessionNotFound)

	sess := entity.NewSession(1, 5, time.Now())
	require.NoError(t, repo.Put(ctx, sess))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Same(t, sess, got)
	require.Equal(t, 1, repo.Len())

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, entity.ErrSessionNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, repo.Delete(ctx, 1))
}

func TestMemorySessionRepository_DeleteIdle(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	stale := entity.NewSession(1, 5, now.Add(-2*time.Hour))
	fresh := entity.NewSession(2, 5, now.Add(-10*time.Minute))
	require.NoError(t, repo.Put(ctx, stale))
	require.NoError(t, repo.Put(ctx, fresh))

	removed, err := repo.DeleteIdle(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, entity.ErrSessionNotFound)
	_, err = repo.Get(ctx, 2)
	require.NoError(t, err)
}

func TestMemorySessionRepository_PutRefreshesActivity(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	sess := entity.NewSession(1, 5, now.Add(-2*time.Hour))
	require.NoError(t, repo.Put(ctx, sess))

	// Повторный Put с новой отметкой активности спасает сессию от свипа
	sess.Touch(now)
	require.NoError(t, repo.Put(ctx, sess))

	removed, err := repo.DeleteIdle(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, removed)
	require.Equal(t, 1, repo.Len())
}

func TestMemorySessionRepository_Concurrent(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(userID int64) {
			defer func() { done <- struct{}{} }()
			sess := entity.NewSession(userID, 5, time.Now())
			_ = repo.Put(ctx, sess)
			_, _ = repo.Get(ctx, userID)
			_ = repo.Delete(ctx, userID)
		}(int64(i))
	}
	for i := 0; i < 10; i++ {
		<-done
	}
	require.Equal(t, 0, repo.Len())
}
