package domain

import "time"

// UncategorizedName labels the bucket of work without a resolvable category.
const UncategorizedName = "Uncategorized"

type CategoryProductivity struct {
	CategoryID     *uint64
	CategoryName   string
	TasksCompleted int
	TimeSpent      int
	Score          float64
}

type ProductivitySummary struct {
	Date                time.Time
	DailyScore          float64
	TotalTasksCompleted int
	TotalTimeSpent      int
	Categories          []CategoryProductivity
}

// ProductivityLog is the stored snapshot of one summary bucket, keyed by
// (Date, CategoryID).
type ProductivityLog struct {
	ID             uint64
	Date           time.Time
	Score          float64
	CategoryID     *uint64
	TasksCompleted int
	TimeSpent      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
