package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

const transcriptSchema = `
CREATE TABLE IF NOT EXISTS transcripts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT    NOT NULL,
	user_id    INTEGER NOT NULL,
	username   TEXT    NOT NULL,
	first_name TEXT    NOT NULL,
	last_name  TEXT    NOT NULL,
	phone      TEXT    NOT NULL,
	answers    TEXT    NOT NULL
);`

// SQLiteTranscriptSink журнал анкет в локальной базе SQLite.
// Используется, когда Google Sheets не настроен.
type SQLiteTranscriptSink struct {
	db *sql.DB
}

// OpenSQLiteTranscriptSink открывает базу по пути path и создаёт таблицу
func OpenSQLiteTranscriptSink(path string) (*SQLiteTranscriptSink, error) {
	if path == "" {
		return nil, fmt.Errorf("transcript db path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(transcriptSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create transcripts table: %w", err)
	}
	return &SQLiteTranscriptSink{db: db}, nil
}

// Close закрывает базу
func (s *SQLiteTranscriptSink) Close() error {
	return s.db.Close()
}

// Append добавляет одну запись о завершённой анкете
func (s *SQLiteTranscriptSink) Append(ctx context.Context, row entity.TranscriptRow) error {
	answers, err := json.Marshal(row.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (created_at, user_id, username, first_name, last_name, phone, answers)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.Timestamp.Format("2006-01-02 15:04:05 MST"),
		row.UserID,
		row.Username,
		row.FirstName,
		row.LastName,
		row.Phone,
		string(answers),
	)
	if err != nil {
		return fmt.Errorf("insert transcript row: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.TranscriptSink = (*SQLiteTranscriptSink)(nil)
