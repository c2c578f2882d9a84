package main

import (
	"context"
	"database/sql"
	"fmt"

	"memory-mob/config"
	"memory-mob/config/postgre"
	"memory-mob/internal/credential"
	credFile "memory-mob/internal/credential/repository/file"
	credUsecase "memory-mob/internal/credential/usecase"
	"memory-mob/internal/reminder"
	reminderPostgre "memory-mob/internal/reminder/repository/postgre"
	reminderUsecase "memory-mob/internal/reminder/usecase"
	"memory-mob/internal/voice"
	voiceUsecase "memory-mob/internal/voice/usecase"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/deepgram"
	"memory-mob/pkg/llmprovider"
	"memory-mob/pkg/log"
)

// app holds the dependencies shared by subcommands. Postgres and the provider
// clients are opened only by the commands that need them.
type app struct {
	cfg    *config.Config
	l      log.Logger
	zone   *datemath.Zone
	locale string
	creds  credential.UseCase

	db *sql.DB
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if verboseFlag {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled && !noColorFlag,
	})

	zone, err := datemath.NewZone(cfg.Timezone.Name)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone.Name, err)
	}
	locale := cfg.Timezone.Locale
	if !datemath.SupportedLocale(locale) {
		locale = datemath.DefaultLocale
	}

	return &app{
		cfg:    cfg,
		l:      l,
		zone:   zone,
		locale: locale,
		creds:  credUsecase.New(credFile.New(cfg.Credentials.Path, l), l),
	}, nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *app) chatID() string {
	if chatFlag != "" {
		return chatFlag
	}
	return a.cfg.Telegram.DefaultChatID
}

func (a *app) reminders(ctx context.Context) (reminder.UseCase, error) {
	if a.db == nil {
		db, err := postgre.Connect(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := reminderPostgre.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		a.db = db
	}
	repo := reminderPostgre.New(a.db, a.l)
	return reminderUsecase.New(repo, a.zone, a.cfg.Telegram.DefaultChatID, a.l), nil
}

func (a *app) voice() (voice.UseCase, error) {
	stt, err := deepgram.New(deepgram.Config{
		BaseURL: a.cfg.Deepgram.BaseURL,
		Timeout: a.cfg.Deepgram.Timeout,
		Options: deepgram.Options{
			Language:    a.cfg.Deepgram.Language,
			Model:       a.cfg.Deepgram.Model,
			Punctuate:   a.cfg.Deepgram.Punctuate,
			SmartFormat: a.cfg.Deepgram.SmartFormat,
		},
	})
	if err != nil {
		return nil, err
	}

	provider, err := llmprovider.NewProvider(a.cfg.LLM)
	if err != nil {
		return nil, err
	}
	llm := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: a.cfg.LLM.Timeout}, a.l)

	return voiceUsecase.New(stt, llm, a.creds, a.zone, voiceUsecase.Config{
		Temperature: a.cfg.LLM.Temperature,
		MaxTokens:   a.cfg.LLM.MaxTokens,
	}, nil, a.l), nil
}
