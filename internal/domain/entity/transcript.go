package entity

import (
	"strconv"
	"time"
)

// TranscriptRow запись о завершённой анкете для журнала ответов
type TranscriptRow struct {
	Timestamp time.Time
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Answers   []string // по одному значению на вопрос, в порядке банка
}

// Flatten разворачивает запись в плоский список значений:
// timestamp, user_id, username, first_name, last_name, phone, answer_1..answer_N
func (r TranscriptRow) Flatten() []string {
	out := make([]string, 0, 6+len(r.Answers))
	out = append(out,
		r.Timestamp.Format("2006-01-02 15:04:05 MST"),
		strconv.FormatInt(r.UserID, 10),
		r.Username,
		r.FirstName,
		r.LastName,
		r.Phone,
	)
	out = append(out, r.Answers...)
	return out
}
