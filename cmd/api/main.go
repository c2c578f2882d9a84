package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"memory-mob/config"
	"memory-mob/config/postgre"
	_ "memory-mob/docs" // Swagger docs
	credHTTP "memory-mob/internal/credential/delivery/http"
	credFile "memory-mob/internal/credential/repository/file"
	credUsecase "memory-mob/internal/credential/usecase"
	"memory-mob/internal/httpserver"
	"memory-mob/internal/middleware"
	reminderHTTP "memory-mob/internal/reminder/delivery/http"
	tgDelivery "memory-mob/internal/reminder/delivery/telegram"
	reminderPostgre "memory-mob/internal/reminder/repository/postgre"
	reminderUsecase "memory-mob/internal/reminder/usecase"
	voiceHTTP "memory-mob/internal/voice/delivery/http"
	voiceUsecase "memory-mob/internal/voice/usecase"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/deepgram"
	"memory-mob/pkg/llmprovider"
	"memory-mob/pkg/log"
	"memory-mob/pkg/metrics"
	"memory-mob/pkg/telegram"
)

// @title       memory-mob API
// @description Personal reminders with voice drafts: Deepgram transcription, Groq time extraction, Postgres storage and Telegram intake.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting memory-mob...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	zone, err := datemath.NewZone(cfg.Timezone.Name)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Timezone.Name, err)
		return
	}
	if !datemath.SupportedLocale(cfg.Timezone.Locale) {
		logger.Warnf(ctx, "Unsupported locale %q, falling back to %s", cfg.Timezone.Locale, datemath.DefaultLocale)
		cfg.Timezone.Locale = datemath.DefaultLocale
	}

	// 4. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	if err := reminderPostgre.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate reminders schema: ", err)
		return
	}

	// 5. Metrics
	m := metrics.MustNewMetrics(nil)

	// 6. Credentials
	credRepo := credFile.New(cfg.Credentials.Path, logger)
	credUC := credUsecase.New(credRepo, logger)
	logger.Infof(ctx, "Credentials file: %s", cfg.Credentials.Path)

	// 7. Reminders
	reminderRepo := reminderPostgre.New(db, logger)
	reminderUC := reminderUsecase.New(reminderRepo, zone, cfg.Telegram.DefaultChatID, logger)

	// 8. Voice pipeline
	stt, err := deepgram.New(deepgram.Config{
		BaseURL: cfg.Deepgram.BaseURL,
		Timeout: cfg.Deepgram.Timeout,
		Options: deepgram.Options{
			Language:    cfg.Deepgram.Language,
			Model:       cfg.Deepgram.Model,
			Punctuate:   cfg.Deepgram.Punctuate,
			SmartFormat: cfg.Deepgram.SmartFormat,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Deepgram client: ", err)
		return
	}

	provider, err := llmprovider.NewProvider(cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to create LLM provider: ", err)
		return
	}
	llm := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, logger)
	llm.SetObserver(func(name string, elapsed time.Duration, err error) {
		m.ObserveStage("llm_"+name, elapsed, err)
	})
	logger.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())

	voiceUC := voiceUsecase.New(stt, llm, credUC, zone, voiceUsecase.Config{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, m, logger)

	// 9. Middleware
	mw := middleware.New(logger, cfg.RateLimit, cfg.Telegram.SecretToken)

	// 10. Telegram intake (optional)
	var telegramHandler tgDelivery.Handler
	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, reminderUC, voiceUC, telegramBot, zone, cfg.Timezone.Locale, m)
		logger.Info(ctx, "✅ Telegram intake enabled")
	} else {
		logger.Warn(ctx, "Telegram intake skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 11. HTTP Server
	reminderH := reminderHTTP.New(logger, reminderUC, zone, cfg.Timezone.Locale, m)
	credH := credHTTP.New(logger, credUC)
	voiceH := voiceHTTP.New(logger, voiceUC, zone)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		Domains: []httpserver.RouteRegistrar{
			func(api *gin.RouterGroup, _ middleware.Middleware) {
				reminderHTTP.RegisterRoutes(api, reminderH)
			},
			func(api *gin.RouterGroup, _ middleware.Middleware) {
				credHTTP.RegisterRoutes(api, credH)
			},
			func(api *gin.RouterGroup, mw middleware.Middleware) {
				voiceHTTP.RegisterRoutes(api, voiceH, mw.VoiceRateLimit())
			},
		},
		TelegramHandler: telegramHandler,
		MetricsHandler:  m.Handler(),
		Readiness:       db.PingContext,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if telegramBot != nil {
		g.Go(func() error {
			registerWebhook(gctx, logger, telegramBot, cfg.Telegram)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL, or the
// ngrok tunnel when none is set. Failures are logged, the server keeps running.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
