// Package sheets пишет журнал анкет в Google Sheets.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
)

// Sink добавляет по одной строке на завершённую анкету
// в первый лист таблицы spreadsheetID.
type Sink struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New создаёт клиента Sheets по JSON сервисного аккаунта
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Sink, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Sink{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Append дописывает строку анкеты в конец листа
func (s *Sink) Append(ctx context.Context, row entity.TranscriptRow) error {
	flat := row.Flatten()
	values := make([]interface{}, len(flat))
	for i, v := range flat {
		values[i] = v
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, "A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to sheet: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.TranscriptSink = (*Sink)(nil)
