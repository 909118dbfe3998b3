package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

type TimeBlockRepository interface {
	CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput, now time.Time) (domain.TimeBlock, error)
	ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error)
	GetTimeBlockByID(ctx context.Context, blockID uint64) (domain.TimeBlock, error)
	UpdateTimeBlock(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, blockID uint64) error
	ListTimeBlocksModifiedSince(ctx context.Context, since *time.Time) ([]domain.TimeBlock, error)
}

type TimeBlockService interface {
	CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error)
	ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error)
	GetTimeBlock(ctx context.Context, blockID uint64) (domain.TimeBlock, error)
	UpdateTimeBlock(ctx context.Context, blockID uint64, patch domain.TimeBlockPatch) (domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, blockID uint64) error
}
