package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Префикс отличает токены ответов от любых других callback-данных.
const tokenPrefix = "ans"

// AnswerToken кодирует пару (вопрос, вариант) в callback-токен "ans:<q>:<opt>".
// Кодирование инъективно: разные пары дают разные токены.
func AnswerToken(question, option int) string {
	return fmt.Sprintf("%s:%d:%d", tokenPrefix, question, option)
}

// IsAnswerToken сообщает, похожи ли callback-данные на токен ответа
func IsAnswerToken(data string) bool {
	return strings.HasPrefix(data, tokenPrefix+":")
}

// ParseAnswerToken разбирает токен обратно в индексы вопроса и варианта.
// Токен неверной формы или с нечисловыми полями отклоняется.
func ParseAnswerToken(data string) (question, option int, err error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != tokenPrefix {
		return 0, 0, fmt.Errorf("malformed answer token %q", data)
	}
	question, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed answer token %q: %w", data, err)
	}
	option, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed answer token %q: %w", data, err)
	}
	if question < 0 || option < 0 {
		return 0, 0, fmt.Errorf("malformed answer token %q: negative index", data)
	}
	return question, option, nil
}
