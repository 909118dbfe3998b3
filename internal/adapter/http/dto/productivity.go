package dto

type CategoryProductivityItem struct {
	CategoryID     *uint64 `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	TasksCompleted int     `json:"tasks_completed"`
	TimeSpent      int     `json:"time_spent"`
	Score          float64 `json:"score"`
}

type ProductivitySummaryResponse struct {
	Date                string                     `json:"date"`
	DailyScore          float64                    `json:"daily_score"`
	TotalTasksCompleted int                        `json:"total_tasks_completed"`
	TotalTimeSpent      int                        `json:"total_time_spent"`
	Categories          []CategoryProductivityItem `json:"categories"`
}

type ProductivityLogItem struct {
	ID             uint64  `json:"id"`
	Date           string  `json:"date"`
	Score          float64 `json:"score"`
	CategoryID     *uint64 `json:"category_id"`
	TasksCompleted int     `json:"tasks_completed"`
	TimeSpent      int     `json:"time_spent"`
	UpdatedAt      string  `json:"updated_at"`
}
