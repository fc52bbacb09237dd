package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/application/admission"
	"github.com/eventboard/eventboard/internal/application/availability"
	"github.com/eventboard/eventboard/internal/application/lifecycle"
	"github.com/eventboard/eventboard/internal/config"
	"github.com/eventboard/eventboard/internal/infrastructure/postgres"
	"github.com/eventboard/eventboard/internal/infrastructure/stats"
	"github.com/eventboard/eventboard/internal/pkg/logger"
	"github.com/eventboard/eventboard/internal/transport/rest/handlers"
	"github.com/eventboard/eventboard/internal/transport/rest/router"
)

// sysClock implements the application Clock interfaces using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Stats     *stats.Client
	Publisher *stats.Publisher
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		_ = os.Setenv("LOG_FORMAT", cfg.LogFormat)
	}
	logger.Init()

	u, _ := url.Parse(cfg.DatabaseURL)
	zlog.Info().
		Str("db_user", u.User.Username()).
		Str("db_host", u.Host).
		Str("db_db", u.Path).
		Msg("db config loaded")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	app := NewApp(cfg, db)
	defer func() {
		if app.Stats != nil {
			_ = app.Stats.Close()
		}
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
	}()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	}()

	<-rootCtx.Done()
	zlog.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("shutdown failed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	events := postgres.NewEventRepo(db)
	requests := postgres.NewRequestRepo(db)
	users := postgres.NewUserDirectory(db)
	categories := postgres.NewCategoryDirectory(db)
	locations := postgres.NewLocationRepo(db)

	var rabbit *stats.Publisher
	var hitPub stats.HitPublisher
	if cfg.RabbitURL != "" {
		p, err := stats.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		hitPub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: hits will not be streamed")
	}

	analytics, err := stats.New(cfg.RedisURL, cfg.AppName, hitPub)
	if err != nil {
		zlog.Fatal().Err(err).Msg("analytics client init failed")
	}

	// 2) Application
	avail := availability.New(requests)
	lifecycleSvc := lifecycle.New(events, users, categories, locations, analytics, avail, sysClock{})
	admissionSvc := admission.New(requests, events, users, sysClock{})

	// 3) Transport
	eventsH := handlers.NewEventsHandler(lifecycleSvc, avail)
	requestsH := handlers.NewRequestsHandler(admissionSvc)
	healthH := handlers.NewHealthHandler()

	httpHandler := router.New(eventsH, requestsH, healthH, cfg)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Stats:     analytics,
		Publisher: rabbit,
	}
}
