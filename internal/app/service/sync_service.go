package service

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// SyncService serves offline clients the records changed after a timestamp.
type SyncService struct {
	taskRepository      ports.TaskRepository
	categoryRepository  ports.CategoryRepository
	timeBlockRepository ports.TimeBlockRepository
}

func NewSyncService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository, timeBlockRepository ports.TimeBlockRepository) *SyncService {
	return &SyncService{
		taskRepository:      taskRepository,
		categoryRepository:  categoryRepository,
		timeBlockRepository: timeBlockRepository,
	}
}

func (s *SyncService) Tasks(ctx context.Context, modifiedSince *time.Time) ([]domain.Task, error) {
	return s.taskRepository.ListTasksModifiedSince(ctx, utc(modifiedSince))
}

func (s *SyncService) Categories(ctx context.Context, modifiedSince *time.Time) ([]domain.Category, error) {
	return s.categoryRepository.ListCategoriesModifiedSince(ctx, utc(modifiedSince))
}

func (s *SyncService) TimeBlocks(ctx context.Context, modifiedSince *time.Time) ([]domain.TimeBlock, error) {
	return s.timeBlockRepository.ListTimeBlocksModifiedSince(ctx, utc(modifiedSince))
}

var _ ports.SyncService = (*SyncService)(nil)
