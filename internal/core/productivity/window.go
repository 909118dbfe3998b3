package productivity

import "time"

// Window is one calendar day, closed on both ends at microsecond resolution:
// [00:00:00, 23:59:59.999999]. Timestamps are compared as stored (UTC) with no
// zone conversion.
type Window struct {
	Start time.Time
	End   time.Time
}

func DayWindow(date time.Time) Window {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.Add(24*time.Hour - time.Microsecond),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Date returns the calendar day the window covers.
func (w Window) Date() time.Time {
	return w.Start
}
