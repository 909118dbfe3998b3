package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/handlers"
	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/app"
	"taskplanner/internal/config"
	"taskplanner/internal/core/ports"
)

// NewRouter builds the gin engine with the middleware chain and every API
// route wired to services.
func NewRouter(logger *zap.Logger, cfg *config.Config, db *sqlx.DB, services *app.Services, clock ports.Clock) (*gin.Engine, error) {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.GinZapMiddleware(logger),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	RegisterRoutes(r, Handlers{
		Health:       handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		Task:         handlers.NewTaskHandler(services.Tasks),
		Category:     handlers.NewCategoryHandler(services.Categories),
		TimeBlock:    handlers.NewTimeBlockHandler(services.TimeBlocks),
		Productivity: handlers.NewProductivityHandler(services.Productivity, clock),
		Sync:         handlers.NewSyncHandler(services.Sync, services.Tasks),
		Notification: handlers.NewNotificationHandler(services.Reminders),
	}, cfg.APIPassword)

	return r, nil
}
