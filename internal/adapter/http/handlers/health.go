package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/db"
	"taskplanner/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

// DatabaseHealth describes the store behind the API.
type DatabaseHealth struct {
	Status        string `json:"status"`
	Driver        string `json:"driver"`
	SchemaVersion string `json:"schema_version"`
	LatencyMs     int64  `json:"latency_ms"`
}

type HealthReport struct {
	HealthBasic
	Language string         `json:"language"`
	Database DatabaseHealth `json:"database"`
}

type HealthHandler struct {
	db         *sqlx.DB
	appName    string
	appVersion string
}

func NewHealthHandler(conn *sqlx.DB, appName, appVersion string) *HealthHandler {
	if appVersion == "" {
		appVersion = "dev"
	}
	return &HealthHandler{db: conn, appName: appName, appVersion: appVersion}
}

// CheckHealth answers 503 while the database is unreachable.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	database := h.inspectDatabase(c.Request.Context())

	statusCode := http.StatusOK
	if database.Status != StatusOk {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, h.basic(database.Status))
}

// CheckHealthReport always answers 200; the body carries the database state.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	database := h.inspectDatabase(c.Request.Context())

	c.JSON(http.StatusOK, HealthReport{
		HealthBasic: h.basic(database.Status),
		Language:    middleware.GetLang(c),
		Database:    database,
	})
}

func (h *HealthHandler) basic(message string) HealthBasic {
	return HealthBasic{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Message:           message,
	}
}

func (h *HealthHandler) inspectDatabase(ctx context.Context) DatabaseHealth {
	if h.db == nil {
		return DatabaseHealth{Status: StatusDown}
	}

	health := DatabaseHealth{Status: StatusDown, Driver: h.db.DriverName()}

	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()

	started := time.Now()
	if err := h.db.PingContext(timeoutCtx); err != nil {
		zap.L().Warn("health check: database ping failed", zap.Error(err))
		return health
	}
	health.LatencyMs = time.Since(started).Milliseconds()
	health.Status = StatusOk

	version, err := db.SchemaVersion(timeoutCtx, h.db)
	if err != nil {
		zap.L().Warn("health check: schema version unavailable", zap.Error(err))
		return health
	}
	health.SchemaVersion = version
	return health
}
