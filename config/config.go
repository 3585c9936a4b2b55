package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/thwqsz/Bot-ilia/internal/domain/entity"
)

// Config настройки бота из переменных окружения
type Config struct {
	BotToken string `env:"BOT_TOKEN"`

	// Журнал анкет: при пустом SheetID используется локальная база SQLite
	SheetID               string `env:"SHEET_ID"`
	GoogleCredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`
	TranscriptDBPath      string `env:"TRANSCRIPT_DB_PATH" envDefault:"transcripts.db"`

	// Закрытый чат и резервная ссылка на случай отказа выпуска приглашения
	TargetChatID  int64  `env:"TARGET_CHAT_ID"`
	InviteTTLDays int    `env:"INVITE_TTL_DAYS" envDefault:"7"`
	FallbackLink  string `env:"FALLBACK_LINK" envDefault:"https://t.me/business_immersion"`

	OwnerID  int64  `env:"OWNER_ID"`
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Moscow"`

	// Необязательный JSON-файл с вопросами вместо встроенного набора
	QuestionsPath string `env:"QUESTIONS_PATH"`

	// Вытеснение брошенных сессий
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
}

// Load читает .env (если есть) и разбирает окружение
func Load() (*Config, error) {
	// Отсутствие .env файла не ошибка
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// InviteTTL срок действия ссылки-приглашения
func (c *Config) InviteTTL() time.Duration {
	return time.Duration(c.InviteTTLDays) * 24 * time.Hour
}

// QuestionBank собирает банк вопросов: из файла QuestionsPath,
// либо встроенный набор по умолчанию.
func (c *Config) QuestionBank() (*entity.Bank, error) {
	questions := entity.DefaultQuestions()
	if c.QuestionsPath != "" {
		data, err := os.ReadFile(c.QuestionsPath)
		if err != nil {
			return nil, fmt.Errorf("read questions file: %w", err)
		}
		questions = nil
		if err := json.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("decode questions file: %w", err)
		}
	}
	return entity.NewBank(questions)
}
