package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	dbadapter "taskplanner/internal/adapter/db"
	"taskplanner/internal/app"
	"taskplanner/internal/cli"
	"taskplanner/internal/config"
	"taskplanner/internal/core/ports"
)

// Set by ldflags at build time.
var version = "dev"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	cli.SetVersion(version)
	cli.OpenProductivity = func(ctx context.Context) (ports.ProductivityService, func(), error) {
		cfg := config.LoadConfig()
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to %s: %w", cfg.DbDriver, err)
		}
		if err := dbadapter.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}
		services := app.NewServices(db, ports.SystemClock{})
		return services.Productivity, func() { _ = db.Close() }, nil
	}

	err = cli.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
