package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-scheduler/internal/middleware"
	tgDelivery "chat-task-scheduler/internal/task/delivery/telegram"
	"chat-task-scheduler/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// ReadyFunc reports whether a dependency can serve traffic.
type ReadyFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Telegram chat surface
	telegramHandler tgDelivery.Handler
	mw              middleware.Middleware

	// Operations
	metricsHandler http.Handler
	readyChecks    map[string]ReadyFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// ShutdownTimeout bounds graceful shutdown. Zero uses 10s.
	ShutdownTimeout time.Duration

	TelegramHandler tgDelivery.Handler
	Middleware      middleware.Middleware

	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	// ReadyChecks are run by /ready, keyed by dependency name.
	ReadyChecks map[string]ReadyFunc
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
		shutdownTimeout: cfg.ShutdownTimeout,
		telegramHandler: cfg.TelegramHandler,
		mw:              cfg.Middleware,
		metricsHandler:  cfg.MetricsHandler,
		readyChecks:     cfg.ReadyChecks,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the routed engine, mostly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
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
