package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/thwqsz/Bot-ilia/config"
	telegram "github.com/thwqsz/Bot-ilia/internal/api"
	"github.com/thwqsz/Bot-ilia/internal/container"
	"github.com/thwqsz/Bot-ilia/internal/domain/port"
	"github.com/thwqsz/Bot-ilia/internal/infrastructure/invite"
	"github.com/thwqsz/Bot-ilia/internal/infrastructure/sheets"
	"github.com/thwqsz/Bot-ilia/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	bank, err := cfg.QuestionBank()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build question bank")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot api client")
	}
	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Хранилище сессий с вытеснением брошенных диалогов
	sessions := storage.NewMemorySessionRepository()
	go storage.RunSessionSweeper(ctx, sessions, cfg.SweepInterval, cfg.SessionTTL)

	// Журнал анкет: Google Sheets, при его отсутствии локальная база
	var transcripts port.TranscriptSink
	if cfg.SheetID != "" && cfg.GoogleCredentialsJSON != "" {
		sink, err := sheets.New(ctx, []byte(cfg.GoogleCredentialsJSON), cfg.SheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create sheets sink")
		}
		transcripts = sink
		log.Info().Str("sheet_id", cfg.SheetID).Msg("transcripts go to google sheets")
	} else {
		sink, err := storage.OpenSQLiteTranscriptSink(cfg.TranscriptDBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open transcript db")
		}
		defer sink.Close()
		transcripts = sink
		log.Info().Str("path", cfg.TranscriptDBPath).Msg("transcripts go to local sqlite db")
	}

	issuer := invite.NewIssuer(api, cfg.TargetChatID, cfg.InviteTTL())

	appContainer := container.New(bank, sessions, issuer, transcripts, cfg.OwnerID, cfg.FallbackLink, loc)

	bot := telegram.NewBot(api, appContainer.Survey)

	log.Info().Int("questions", bank.Count()).Msg("bot is running")
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
	log.Info().Msg("bot stopped")
}
