package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

func TestSQLiteTranscriptSink_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.db")
	sink, err := OpenSQLiteTranscriptSink(path)
	require.NoError(t, err)
	defer sink.Close()

	row := entity.TranscriptRow{
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UserID:    42,
		Username:  "anna",
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+79991234567",
		Answers:   []string{"знаю несколько", "нет"},
	}
	require.NoError(t, sink.Append(context.Background(), row))

	var count int
	var phone, answers string
	err = sink.db.QueryRow(`SELECT COUNT(*) FROM transcripts`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	err = sink.db.QueryRow(`SELECT phone, answers FROM transcripts WHERE user_id = 42`).Scan(&phone, &answers)
	require.NoError(t, err)
	require.Equal(t, "+79991234567", phone)
	require.Contains(t, answers, "знаю несколько")
}

func TestOpenSQLiteTranscriptSink_EmptyPath(t *testing.T) {
	_, err := OpenSQLiteTranscriptSink("")
	require.Error(t, err)
}
