package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"memory-mob/internal/middleware"
	"memory-mob/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// RouteRegistrar plugs a domain's delivery layer into the API group.
type RouteRegistrar func(api *gin.RouterGroup, mw middleware.Middleware)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	domains []RouteRegistrar

	// Telegram intake
	telegramHandler interface {
		HandleWebhook(c *gin.Context)
	}

	// Observability
	metricsHandler gin.HandlerFunc
	readiness      func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Domains registers /api/v1 routes, one entry per domain.
	Domains []RouteRegistrar

	// TelegramHandler serves POST /webhook/telegram when set.
	TelegramHandler interface {
		HandleWebhook(c *gin.Context)
	}

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler gin.HandlerFunc

	// Readiness is consulted by GET /ready, e.g. a database ping.
	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		domains:         cfg.Domains,
		telegramHandler: cfg.TelegramHandler,
		metricsHandler:  cfg.MetricsHandler,
		readiness:       cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv HTTPServer) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", hs.Addr)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}
