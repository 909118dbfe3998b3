package app

import (
	"github.com/jmoiron/sqlx"

	dbadapter "taskplanner/internal/adapter/db"
	"taskplanner/internal/app/service"
	"taskplanner/internal/core/ports"
)

// Services holds the application services built on one database handle.
type Services struct {
	Tasks        *service.TaskService
	Categories   *service.CategoryService
	TimeBlocks   *service.TimeBlockService
	Productivity *service.ProductivityService
	Sync         *service.SyncService
	Reminders    *service.ReminderService
}

func NewServices(db *sqlx.DB, clock ports.Clock) *Services {
	taskRepository := dbadapter.NewTaskRepository(db)
	subTaskRepository := dbadapter.NewSubTaskRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	timeBlockRepository := dbadapter.NewTimeBlockRepository(db)
	productivityRepository := dbadapter.NewProductivityRepository(db)

	return &Services{
		Tasks:        service.NewTaskService(taskRepository, subTaskRepository, categoryRepository, clock),
		Categories:   service.NewCategoryService(categoryRepository, clock),
		TimeBlocks:   service.NewTimeBlockService(timeBlockRepository, taskRepository, clock),
		Productivity: service.NewProductivityService(productivityRepository, productivityRepository, clock),
		Sync:         service.NewSyncService(taskRepository, categoryRepository, timeBlockRepository),
		Reminders:    service.NewReminderService(taskRepository, clock),
	}
}
