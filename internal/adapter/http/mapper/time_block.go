package mapper

import (
	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

func ToTimeBlockItems(blocks []domain.TimeBlock) []dto.TimeBlockItem {
	items := make([]dto.TimeBlockItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, ToTimeBlockItem(block))
	}
	return items
}

func ToTimeBlockItem(block domain.TimeBlock) dto.TimeBlockItem {
	return dto.TimeBlockItem{
		ID:          block.ID,
		TaskID:      block.TaskID,
		StartTime:   FormatTimestamp(block.StartTime),
		EndTime:     FormatTimestamp(block.EndTime),
		Title:       block.Title,
		Description: block.Description,
		CreatedAt:   FormatTimestamp(block.CreatedAt),
		UpdatedAt:   FormatTimestamp(block.UpdatedAt),
	}
}
