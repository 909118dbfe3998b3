package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	dbadapter "taskplanner/internal/adapter/db"
	httpadapter "taskplanner/internal/adapter/http"
	"taskplanner/internal/app"
	"taskplanner/internal/config"
	"taskplanner/internal/core/ports"
	"taskplanner/internal/scheduler"
	"taskplanner/pkg/translator"
)

const snapshotTimeout = 2 * time.Minute

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Fatal("failed to load translations", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	if err := dbadapter.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	clock := ports.SystemClock{}
	services := app.NewServices(db, clock)

	router, err := httpadapter.NewRouter(logger, cfg, db, services, clock)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	loc := cfg.Location()
	jobs := scheduler.New(loc)
	if cfg.SnapshotAt != "" {
		_, err := jobs.ScheduleDaily(cfg.SnapshotAt, func() {
			ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
			defer cancel()
			// Snapshot the calendar day the job fires on, in the cron location.
			if _, err := services.Productivity.UpdateLogs(ctx, clock.Now().In(loc)); err != nil {
				zap.L().Error("nightly productivity snapshot failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Fatal("invalid PRODUCTIVITY_SNAPSHOT_AT", zap.String("value", cfg.SnapshotAt), zap.Error(err))
		}
	}
	jobs.Start()

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("driver", cfg.DbDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
			"scheduler": func(ctx context.Context) error {
				jobs.Stop()
				return nil
			},
		},
	)

	exitCode := <-wait
	if err := db.Close(); err != nil {
		logger.Warn("failed to close database connection", zap.Error(err))
	}
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
