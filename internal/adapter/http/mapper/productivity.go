package mapper

import (
	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

func ToProductivitySummary(summary domain.ProductivitySummary) dto.ProductivitySummaryResponse {
	categories := make([]dto.CategoryProductivityItem, 0, len(summary.Categories))
	for _, entry := range summary.Categories {
		categories = append(categories, ToCategoryProductivity(entry))
	}
	return dto.ProductivitySummaryResponse{
		Date:                summary.Date.UTC().Format(DateLayout),
		DailyScore:          summary.DailyScore,
		TotalTasksCompleted: summary.TotalTasksCompleted,
		TotalTimeSpent:      summary.TotalTimeSpent,
		Categories:          categories,
	}
}

func ToCategoryProductivity(entry domain.CategoryProductivity) dto.CategoryProductivityItem {
	return dto.CategoryProductivityItem{
		CategoryID:     entry.CategoryID,
		CategoryName:   entry.CategoryName,
		TasksCompleted: entry.TasksCompleted,
		TimeSpent:      entry.TimeSpent,
		Score:          entry.Score,
	}
}

func ToProductivityLogItems(logs []domain.ProductivityLog) []dto.ProductivityLogItem {
	items := make([]dto.ProductivityLogItem, 0, len(logs))
	for _, log := range logs {
		items = append(items, dto.ProductivityLogItem{
			ID:             log.ID,
			Date:           log.Date.UTC().Format(DateLayout),
			Score:          log.Score,
			CategoryID:     log.CategoryID,
			TasksCompleted: log.TasksCompleted,
			TimeSpent:      log.TimeSpent,
			UpdatedAt:      FormatTimestamp(log.UpdatedAt),
		})
	}
	return items
}
