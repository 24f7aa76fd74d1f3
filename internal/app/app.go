package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/config"
	"github.com/arena-klein/courtbooker/internal/handler"
	"github.com/arena-klein/courtbooker/internal/middleware"
	"github.com/arena-klein/courtbooker/internal/notification"
	"github.com/arena-klein/courtbooker/internal/repository"
	"github.com/arena-klein/courtbooker/internal/router"
	"github.com/arena-klein/courtbooker/internal/scheduler"
	"github.com/arena-klein/courtbooker/internal/service"
	"github.com/arena-klein/courtbooker/internal/stream"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	loc        *time.Location
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	hub        *stream.Hub
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CourtBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = config.ValidateFacility(); err != nil {
		return nil, fmt.Errorf("facility config: %w", err)
	}

	loc, err := cfg.Facility.Location()
	if err != nil {
		return nil, err
	}
	app.loc = loc

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
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

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	signUpRepo := repository.NewSignUpRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	publisher := stream.NewPublisher(a.redis, a.cfg.Redis.Channel, a.log)
	a.hub = stream.NewHub(a.redis, a.cfg.Redis.Channel, a.log)

	facility := config.Facility(a.cfg.Facility)

	bookingService := service.NewBookingService(bookingRepo, adminRepo, n, publisher, facility, a.loc, a.log)
	signUpService := service.NewSignUpService(signUpRepo, adminRepo, publisher, facility, a.loc, a.log)
	availabilityService := service.NewAvailabilityService(bookingRepo, facility, a.loc)
	maintenanceService := service.NewMaintenanceService(bookingRepo, signUpRepo, a.cfg.Scheduler.RetentionDays, a.loc, a.log)

	a.scheduler = scheduler.New(
		maintenanceService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, signUpService, availabilityService, a.hub)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
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
	go a.hub.Run(ctx)

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

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

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
