package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"

	"github.com/Flapjack766/vetap-website-sub003/internal/config"
	"github.com/Flapjack766/vetap-website-sub003/internal/handler"
	"github.com/Flapjack766/vetap-website-sub003/internal/middleware"
	"github.com/Flapjack766/vetap-website-sub003/internal/notification"
	"github.com/Flapjack766/vetap-website-sub003/internal/qr"
	"github.com/Flapjack766/vetap-website-sub003/internal/repository"
	"github.com/Flapjack766/vetap-website-sub003/internal/router"
	"github.com/Flapjack766/vetap-website-sub003/internal/scheduler"
	"github.com/Flapjack766/vetap-website-sub003/internal/service"
	"github.com/Flapjack766/vetap-website-sub003/internal/webhook"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"vetap",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	passRepo := repository.NewPassRepo(a.db)
	gateRepo := repository.NewGateRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	scanLogRepo := repository.NewScanLogRepo(a.db)
	partnerRepo := repository.NewPartnerRepo(a.db)
	deliveryRepo := repository.NewWebhookDeliveryRepo(a.db)

	partnerSecrets, err := a.cfg.Signing.PartnerSecretMap()
	if err != nil {
		return fmt.Errorf("parse partner secrets: %w", err)
	}

	codec := qr.NewCodec(qr.Config{
		Secret:           a.cfg.Signing.Secret,
		PartnerSecrets:   partnerSecrets,
		AllowPlainTokens: a.cfg.Signing.AllowPlainTokens,
	})

	alerter, err := notification.NewTelegramAlerter(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AlertChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}

	dispatcher := webhook.NewDispatcher(
		partnerRepo,
		deliveryRepo,
		alerter,
		webhook.Config{
			Timeout:     a.cfg.Webhook.Timeout,
			MaxAttempts: a.cfg.Webhook.MaxAttempts,
			RetryDelay:  a.cfg.Webhook.RetryDelay,
		},
		a.log,
	)

	checkInService := service.NewCheckInService(passRepo, gateRepo, scanLogRepo, codec, dispatcher, a.log)
	issuanceService := service.NewIssuanceService(passRepo, eventRepo, gateRepo, dispatcher, a.log)
	gateAuthService := service.NewGateAuthService(gateRepo, eventRepo)

	a.scheduler = scheduler.New(
		dispatcher,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	limiter := middleware.NewScanRateLimiter(middleware.RateLimitConfig{
		PerMinute: a.cfg.RateLimit.ScansPerMinute,
		Burst:     a.cfg.RateLimit.Burst,
	})

	h := handler.NewHandler(checkInService, issuanceService, gateAuthService, dispatcher, codec)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		[]ginext.HandlerFunc{
			middleware.ScannerIdentity(a.cfg.Signing.ScannerJWTSecret),
			limiter.Middleware(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
