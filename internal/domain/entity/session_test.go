package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession(1, 5, now)

	require.Equal(t, int64(1), s.UserID)
	require.Equal(t, StateAwaitingContact, s.State)
	require.Len(t, s.Answers, 5)
	require.Equal(t, 0, s.CurrentQuestion)
	require.Equal(t, now, s.LastActivity)
	for _, a := range s.Answers {
		require.Empty(t, a)
	}
}

func TestSession_SetContact(t *testing.T) {
	s := NewSession(1, 3, time.Now())

	err := s.SetContact(Contact{Username: "anna", FirstName: "Anna"})
	require.ErrorIs(t, err, ErrNoPhone)
	require.Equal(t, StateAwaitingContact, s.State)

	err = s.SetContact(Contact{Phone: "+79991234567", Username: "anna", FirstName: "Anna", LastName: "Petrova"})
	require.NoError(t, err)
	require.Equal(t, StateInTest, s.State)
	require.Equal(t, "+79991234567", s.Phone)
	require.Equal(t, "anna", s.Username)
	require.Equal(t, "Anna", s.FirstName)
	require.Equal(t, "Petrova", s.LastName)
	require.Equal(t, 0, s.CurrentQuestion)
}

func TestSession_RecordAnswer(t *testing.T) {
	s := NewSession(1, 3, time.Now())
	require.NoError(t, s.SetContact(Contact{Phone: "+7999"}))

	require.ErrorIs(t, s.RecordAnswer(1, "x"), ErrStaleAnswer)
	require.Empty(t, s.Answers[1])

	require.NoError(t, s.RecordAnswer(0, "первый"))
	require.Equal(t, "первый", s.Answers[0])
}

func TestSession_RecordAnswer_WrongState(t *testing.T) {
	s := NewSession(1, 3, time.Now())
	require.ErrorIs(t, s.RecordAnswer(0, "x"), ErrWrongState)
}

func TestSession_Advance(t *testing.T) {
	s := NewSession(1, 2, time.Now())
	require.NoError(t, s.SetContact(Contact{Phone: "+7999"}))

	s.Advance()
	require.Equal(t, 1, s.CurrentQuestion)
	require.Equal(t, StateInTest, s.State)

	s.Advance()
	require.Equal(t, 1, s.CurrentQuestion)
	require.Equal(t, StateCompleted, s.State)
}
