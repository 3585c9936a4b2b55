package port

import (
	"context"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

// TranscriptSink интерфейс журнала завершённых анкет.
// Запись только добавляется, ошибка записи не прерывает диалог.
type TranscriptSink interface {
	Append(ctx context.Context, row entity.TranscriptRow) error
}
