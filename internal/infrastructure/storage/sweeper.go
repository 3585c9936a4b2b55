package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

// RunSessionSweeper периодически удаляет сессии, брошенные пользователями.
// Блокируется до отмены ctx.
func RunSessionSweeper(ctx context.Context, sessions port.SessionRepository, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := sessions.DeleteIdle(ctx, now.Add(-maxIdle))
			if err != nil {
				log.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if removed > 0 {
				log.Info().Int("removed", removed).Msg("swept idle sessions")
			}
		}
	}
}
