package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"memory-mob/internal/model"
)

const (
	apiPrefix       = "/api/v1"
	telegramWebhook = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	// Probes, metrics and docs
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	if srv.metricsHandler != nil {
		srv.gin.GET("/metrics", srv.metricsHandler)
	}
	if model.Environment(srv.environment) != model.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}

	// Domains
	api := srv.gin.Group(apiPrefix)
	for _, register := range srv.domains {
		register(api, srv.mw)
	}
	srv.l.Infof(ctx, "%d domain(s) mounted under %s (environment=%s)", len(srv.domains), apiPrefix, srv.environment)

	// Telegram intake
	if srv.telegramHandler == nil {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping %s", telegramWebhook)
		return nil
	}
	srv.gin.POST(telegramWebhook,
		srv.mw.WebhookRateLimit(),
		srv.mw.TelegramSecret(),
		srv.telegramHandler.HandleWebhook,
	)
	srv.l.Infof(ctx, "Telegram webhook registered at POST %s", telegramWebhook)
	return nil
}
