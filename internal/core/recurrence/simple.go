package recurrence

import (
	"strings"
	"time"
)

const (
	simpleDailyCount   = 30
	simpleWeeklyCount  = 12
	simpleMonthlyCount = 12
)

// ExpandSimple handles the coarse keywords "daily", "weekly" and "monthly".
// The first occurrence is base itself. Monthly occurrences keep base's day of
// month, clamped to the last day of shorter months; the clamp never carries
// over into later months. Unknown keywords yield an empty slice.
func ExpandSimple(keyword string, base time.Time) []time.Time {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "daily":
		out := make([]time.Time, 0, simpleDailyCount)
		for i := 0; i < simpleDailyCount; i++ {
			out = append(out, base.AddDate(0, 0, i))
		}
		return out
	case "weekly":
		out := make([]time.Time, 0, simpleWeeklyCount)
		for i := 0; i < simpleWeeklyCount; i++ {
			out = append(out, base.AddDate(0, 0, 7*i))
		}
		return out
	case "monthly":
		out := make([]time.Time, 0, simpleMonthlyCount)
		for i := 0; i < simpleMonthlyCount; i++ {
			out = append(out, addMonthsClamped(base, i))
		}
		return out
	default:
		return []time.Time{}
	}
}

func addMonthsClamped(base time.Time, months int) time.Time {
	year, month, day := base.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, base.Location())
	if last := daysInMonth(target.Month(), target.Year()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

func daysInMonth(month time.Month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
