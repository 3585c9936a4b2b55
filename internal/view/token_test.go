package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnswerToken_RoundTrip(t *testing.T) {
	token := AnswerToken(3, 1)
	require.Equal(t, "ans:3:1", token)
	require.True(t, IsAnswerToken(token))

	q, opt, err := ParseAnswerToken(token)
	require.NoError(t, err)
	require.Equal(t, 3, q)
	require.Equal(t, 1, opt)
}

func TestParseAnswerToken_Malformed(t *testing.T) {
	for _, data := range []string{
		"",
		"ans",
		"ans:1",
		"ans:1:2:3",
		"ans:x:2",
		"ans:1:y",
		"ans:-1:2",
		"other:1:2",
	} {
		_, _, err := ParseAnswerToken(data)
		require.Error(t, err, "token %q", data)
	}
}

func TestIsAnswerToken(t *testing.T) {
	require.True(t, IsAnswerToken("ans:0:0"))
	require.False(t, IsAnswerToken("answer:0:0"))
	require.False(t, IsAnswerToken("/start"))
}
