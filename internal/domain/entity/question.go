package entity

import "fmt"

// Question один вопрос анкеты с фиксированным набором вариантов
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Bank неизменяемый упорядоченный список вопросов.
// Индекс вопроса в списке служит его идентификатором.
type Bank struct {
	questions []Question
}

// NewBank создаёт банк вопросов, проверяя, что у каждого вопроса
// есть текст и минимум два варианта ответа.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for i, q := range questions {
		if q.Text == "" {
			return nil, fmt.Errorf("question %d: empty text", i)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d: need at least 2 options, got %d", i, len(q.Options))
		}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}, nil
}

// Question возвращает вопрос по порядковому номеру
func (b *Bank) Question(i int) Question {
	return b.questions[i]
}

// Count возвращает количество вопросов
func (b *Bank) Count() int {
	return len(b.questions)
}

// DefaultQuestions вопросы анкеты проекта «Бизнес-Погружение»
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:    "Знаете ли вы, какие меры поддержки существуют для студентов, которые хотят открыть бизнес?",
			Options: []string{"не знаю", "слышал, но не разбираюсь", "знаю несколько", "хорошо ориентируюсь"},
		},
		{
			Text:    "Понимаете ли вы, что такое акселератор или бизнес-инкубатор?",
			Options: []string{"нет", "что-то слышал", "знаю в общих чертах", "могу объяснить другим"},
		},
		{
			Text:    "Пользовались ли вы грантами, субсидиями или программами поддержки для стартапов?",
			Options: []string{"нет и не знаю как", "нет, но знаю где искать", "да, пробовал(а)", "да, успешно использовал(а)"},
		},
		{
			Text:    "Насколько хорошо вы ориентируетесь в возможностях бесплатного нетворкинга?",
			Options: []string{"совсем не ориентируюсь", "знаю только по слухам", "знаю несколько площадок", "активно участвую"},
		},
		{
			Text:    "Как вы оцениваете свой уровень знаний о юридических и организационных аспектах открытия бизнеса?",
			Options: []string{"ничего не знаю", "базовые знания", "средний уровень", "высокий уровень"},
		},
	}
}
