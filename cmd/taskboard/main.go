package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/HillyAttic/taskboard/internal/api"
	"github.com/HillyAttic/taskboard/internal/api/handlers"
	"github.com/HillyAttic/taskboard/internal/config"
	"github.com/HillyAttic/taskboard/internal/notify"
	"github.com/HillyAttic/taskboard/internal/repository"
	"github.com/HillyAttic/taskboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootLog := zerolog.New(os.Stderr)

	// .env is optional; real deployments use the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		bootLog.Fatal().Err(err).Msg("load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("config")
	}

	log := newLogger(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	clientRepo := repository.NewClientRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewRecurringTaskRepository(db)

	taskSvc := service.NewRecurringTaskService(taskRepo, categoryRepo, log)
	digestSvc := service.NewDigestService(taskRepo, teamRepo, categoryRepo)

	router := api.NewRouter(
		handlers.NewTaskHandler(taskSvc),
		handlers.NewDirectoryHandler(clientRepo, teamRepo, employeeRepo),
	)

	var notifier *notify.Telegram
	if cfg.TelegramToken != "" {
		notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram")
		}
	}

	scheduler := service.NewSchedulerService(time.Local)
	digestJob := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := digestSvc.DueDigest(jobCtx, time.Now())
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("build digest")
			return
		}
		if text == "" || notifier == nil {
			return
		}
		if err := notifier.SendDigest(text); err != nil {
			log.Error().Err(err).Msg("send digest")
		}
	}

	if cfg.DigestTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, digestJob); err != nil {
			log.Fatal().Err(err).Msg("schedule daily digest")
		}
	}
	if cfg.DigestInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.DigestInterval, digestJob); err != nil {
			log.Fatal().Err(err).Msg("schedule digest")
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("taskboard backend started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server")
	}
	log.Info().Msg("shutdown complete")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
