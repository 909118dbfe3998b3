package http

import (
	"github.com/gin-gonic/gin"

	"taskplanner/internal/adapter/http/handlers"
	"taskplanner/internal/adapter/http/middleware"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Task         *handlers.TaskHandler
	Category     *handlers.CategoryHandler
	TimeBlock    *handlers.TimeBlockHandler
	Productivity *handlers.ProductivityHandler
	Sync         *handlers.SyncHandler
	Notification *handlers.NotificationHandler
}

// RegisterRoutes mounts the API under /api. Health checks stay public; every
// other route requires the API key.
func RegisterRoutes(r *gin.Engine, h Handlers, apiPassword string) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.APIKeyMiddleware(apiPassword))
	{
		secured.GET("/tasks", h.Task.ListTasks)
		secured.POST("/tasks", h.Task.CreateTask)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PATCH("/tasks/:id", h.Task.UpdateTask)
		secured.PUT("/tasks/:id", h.Task.UpdateTask)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)
		secured.GET("/tasks/:id/occurrences", h.Task.ListOccurrences)
		secured.GET("/tasks/:id/next-occurrence", h.Task.NextOccurrence)
		secured.GET("/tasks/:id/subtasks", h.Task.ListSubTasks)
		secured.POST("/tasks/:id/subtasks", h.Task.CreateSubTask)
		secured.PATCH("/tasks/subtasks/:id", h.Task.UpdateSubTask)
		secured.DELETE("/tasks/subtasks/:id", h.Task.DeleteSubTask)

		secured.GET("/categories", h.Category.ListCategories)
		secured.POST("/categories", h.Category.CreateCategory)
		secured.GET("/categories/:id", h.Category.GetCategory)
		secured.PATCH("/categories/:id", h.Category.UpdateCategory)
		secured.PUT("/categories/:id", h.Category.UpdateCategory)
		secured.DELETE("/categories/:id", h.Category.DeleteCategory)

		secured.GET("/time-blocks", h.TimeBlock.ListTimeBlocks)
		secured.POST("/time-blocks", h.TimeBlock.CreateTimeBlock)
		secured.GET("/time-blocks/:id", h.TimeBlock.GetTimeBlock)
		secured.PATCH("/time-blocks/:id", h.TimeBlock.UpdateTimeBlock)
		secured.PUT("/time-blocks/:id", h.TimeBlock.UpdateTimeBlock)
		secured.DELETE("/time-blocks/:id", h.TimeBlock.DeleteTimeBlock)

		secured.GET("/productivity/summary", h.Productivity.GetSummary)
		secured.GET("/productivity/category/:id", h.Productivity.GetCategorySummary)
		secured.POST("/productivity/logs", h.Productivity.UpdateLogs)
		secured.GET("/productivity/logs", h.Productivity.ListLogs)

		secured.GET("/sync/tasks", h.Sync.Tasks)
		secured.GET("/sync/categories", h.Sync.Categories)
		secured.GET("/sync/time-blocks", h.Sync.TimeBlocks)

		secured.GET("/notifications/next-reminder", h.Notification.NextReminder)
	}
}
