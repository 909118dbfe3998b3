package service

import (
	"context"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

type TimeBlockService struct {
	timeBlockRepository ports.TimeBlockRepository
	taskRepository      ports.TaskRepository
	clock               ports.Clock
}

func NewTimeBlockService(timeBlockRepository ports.TimeBlockRepository, taskRepository ports.TaskRepository, clock ports.Clock) *TimeBlockService {
	return &TimeBlockService{
		timeBlockRepository: timeBlockRepository,
		taskRepository:      taskRepository,
		clock:               clock,
	}
}

func (s *TimeBlockService) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	input.StartTime = input.StartTime.UTC()
	input.EndTime = input.EndTime.UTC()
	if !input.StartTime.Before(input.EndTime) {
		return domain.TimeBlock{}, domain.ErrInvalidTimeRange
	}
	if err := s.ensureTask(ctx, input.TaskID); err != nil {
		return domain.TimeBlock{}, err
	}
	return s.timeBlockRepository.CreateTimeBlock(ctx, input, s.clock.Now())
}

func (s *TimeBlockService) ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error) {
	filter.StartDate = utc(filter.StartDate)
	filter.EndDate = utc(filter.EndDate)
	return s.timeBlockRepository.ListTimeBlocks(ctx, filter)
}

func (s *TimeBlockService) GetTimeBlock(ctx context.Context, blockID uint64) (domain.TimeBlock, error) {
	return s.timeBlockRepository.GetTimeBlockByID(ctx, blockID)
}

func (s *TimeBlockService) UpdateTimeBlock(ctx context.Context, blockID uint64, patch domain.TimeBlockPatch) (domain.TimeBlock, error) {
	block, err := s.timeBlockRepository.GetTimeBlockByID(ctx, blockID)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	if patch.TaskIDSet {
		if err := s.ensureTask(ctx, patch.TaskID); err != nil {
			return domain.TimeBlock{}, err
		}
	}

	patch.StartTime = utc(patch.StartTime)
	patch.EndTime = utc(patch.EndTime)
	if err := domain.ApplyTimeBlockPatch(&block, patch, s.clock.Now()); err != nil {
		return domain.TimeBlock{}, err
	}
	return s.timeBlockRepository.UpdateTimeBlock(ctx, block)
}

func (s *TimeBlockService) DeleteTimeBlock(ctx context.Context, blockID uint64) error {
	return s.timeBlockRepository.DeleteTimeBlock(ctx, blockID)
}

func (s *TimeBlockService) ensureTask(ctx context.Context, taskID *uint64) error {
	if taskID == nil {
		return nil
	}
	_, err := s.taskRepository.GetTaskByID(ctx, *taskID)
	return err
}

var _ ports.TimeBlockService = (*TimeBlockService)(nil)
