package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"chat-task-scheduler/config"
	_ "chat-task-scheduler/docs" // Swagger docs
	"chat-task-scheduler/internal/httpserver"
	"chat-task-scheduler/internal/middleware"
	"chat-task-scheduler/internal/observability"
	"chat-task-scheduler/internal/planner"
	"chat-task-scheduler/internal/router"
	"chat-task-scheduler/internal/schedule"
	scheduleUC "chat-task-scheduler/internal/schedule/usecase"
	"chat-task-scheduler/internal/session"
	tgDelivery "chat-task-scheduler/internal/task/delivery/telegram"
	"chat-task-scheduler/internal/task/repository"
	"chat-task-scheduler/internal/task/repository/memory"
	"chat-task-scheduler/internal/task/repository/postgre"
	taskUC "chat-task-scheduler/internal/task/usecase"
	"chat-task-scheduler/internal/webhook"
	"chat-task-scheduler/pkg/datemath"
	"chat-task-scheduler/pkg/gcalendar"
	"chat-task-scheduler/pkg/llmprovider"
	"chat-task-scheduler/pkg/log"
	"chat-task-scheduler/pkg/telegram"
)

// @title       Chat Task Scheduler API
// @description Telegram-driven task capture and calendar scheduling with LLM proposals and a deterministic fallback.
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

	logger.Info(ctx, "Starting Chat Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	metrics := observability.NewMetrics(observability.Namespace)
	readyChecks := map[string]httpserver.ReadyFunc{}

	// 3. Shared clients
	dateMathParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid scheduler timezone: ", err)
		return
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger, llmprovider.WithRecorder(metrics))

	// 4. Task domain
	taskRepo, pool, err := newTaskRepository(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task repository: ", err)
		return
	}
	if pool != nil {
		defer pool.Close()
		readyChecks["postgres"] = pool.Ping
	}
	taskUseCase := taskUC.New(logger, llmManager, taskRepo, dateMathParser)

	// 5. Schedule domain
	workdayStart, workdayEnd, defaultStart, defaultEnd, err := schedulerClocks(cfg.Scheduler)
	if err != nil {
		logger.Error(ctx, "Invalid scheduler window: ", err)
		return
	}

	var calendar schedule.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsFile: cfg.GoogleCalendar.CredentialsPath,
			TokenFile:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			if errors.Is(calErr, gcalendar.ErrMissingToken) {
				logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate the token file")
			}
		} else {
			calendar = schedule.NewCalendar(calendarClient, schedule.CalendarConfig{
				CalendarID:     cfg.GoogleCalendar.CalendarID,
				Location:       dateMathParser.Location(),
				WorkdayStart:   workdayStart,
				WorkdayEnd:     workdayEnd,
				MinSlotMinutes: cfg.Scheduler.MinSlotMinutes,
			})
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Google Calendar skipped: proposals use the default working window and approval is disabled")
	}

	scheduleUseCase := scheduleUC.New(
		logger,
		taskUseCase,
		calendar,
		schedule.NewGenerator(llmManager),
		session.New(cfg.Scheduler.SessionSize),
		dateMathParser,
		metrics,
		scheduleUC.Config{
			DefaultStart:   defaultStart,
			DefaultEnd:     defaultEnd,
			MinSlotMinutes: cfg.Scheduler.MinSlotMinutes,
			ProposalTTL:    cfg.Scheduler.ProposalTTL,
		},
	)

	// 6. Telegram surface
	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	mw := middleware.New(logger, security, metrics)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(
			logger,
			taskUseCase,
			scheduleUseCase,
			router.New(llmManager, logger),
			telegramBot,
			security,
			metrics,
		)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Webhook.Secret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
		if cfg.Webhook.Secret == "" {
			logger.Warn(ctx, "webhook.secret is empty: the Telegram webhook accepts unauthenticated requests")
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		Middleware:      mw,
		MetricsHandler:  metrics.Handler(),
		ReadyChecks:     readyChecks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newTaskRepository picks Postgres when a DSN is configured, memory otherwise.
// The returned pool is nil for the memory store.
func newTaskRepository(ctx context.Context, cfg config.PostgresConfig, l log.Logger) (repository.Repository, *pgxpool.Pool, error) {
	if cfg.DSN == "" {
		l.Warn(ctx, "postgres.dsn is empty: tasks are kept in memory and lost on restart")
		return memory.New(), nil, nil
	}

	pool, err := postgre.Connect(ctx, cfg.DSN, cfg.MaxConns)
	if err != nil {
		return nil, nil, err
	}
	repo, err := postgre.New(ctx, pool, l)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	l.Info(ctx, "✅ Postgres task store initialized")
	return repo, pool, nil
}

func schedulerClocks(cfg config.SchedulerConfig) (workStart, workEnd, defStart, defEnd planner.Clock, err error) {
	raw := []string{cfg.WorkdayStart, cfg.WorkdayEnd, cfg.DefaultStart, cfg.DefaultEnd}
	clocks := make([]planner.Clock, len(raw))
	for i, s := range raw {
		if clocks[i], err = planner.ParseClock(s); err != nil {
			return
		}
	}
	return clocks[0], clocks[1], clocks[2], clocks[3], nil
}
