package service

import (
	"context"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

type ReminderService struct {
	taskRepository ports.TaskRepository
	clock          ports.Clock
}

func NewReminderService(taskRepository ports.TaskRepository, clock ports.Clock) *ReminderService {
	return &ReminderService{taskRepository: taskRepository, clock: clock}
}

// NextReminder returns the incomplete task whose reminder comes first after
// now, or nil when nothing is pending.
func (s *ReminderService) NextReminder(ctx context.Context) (*domain.Task, error) {
	return s.taskRepository.NextReminder(ctx, s.clock.Now())
}

var _ ports.ReminderService = (*ReminderService)(nil)
