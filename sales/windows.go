package sales

import (
	"time"

	"github.com/nanaboakye-dev/tasty-bites/models"
)

// DailyStatuses counts every paid or in-flight order toward today's numbers.
// pending and cancelled orders never count.
var DailyStatuses = []models.OrderStatus{
	models.StatusPaid,
	models.StatusPreparing,
	models.StatusCompleted,
	models.StatusDelivered,
}

// FinishedStatuses is the filter for the rolling windows: only orders that
// actually finished count toward weekly and monthly revenue.
var FinishedStatuses = []models.OrderStatus{
	models.StatusCompleted,
	models.StatusDelivered,
}

// Window is a time range with the statuses that qualify inside it. End is
// zero for rolling windows, which run up to the present.
type Window struct {
	Start    time.Time
	End      time.Time
	Statuses []models.OrderStatus
}

// DailyWindow covers [local midnight, next local midnight) around now.
func DailyWindow(now time.Time) Window {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Window{
		Start:    startOfDay,
		End:      startOfDay.AddDate(0, 0, 1),
		Statuses: DailyStatuses,
	}
}

// WeeklyWindow covers the rolling last 7×24h.
func WeeklyWindow(now time.Time) Window {
	return Window{
		Start:    now.Add(-7 * 24 * time.Hour),
		Statuses: FinishedStatuses,
	}
}

// MonthlyWindow covers the rolling last 30×24h.
func MonthlyWindow(now time.Time) Window {
	return Window{
		Start:    now.Add(-30 * 24 * time.Hour),
		Statuses: FinishedStatuses,
	}
}

// Contains reports whether an order with the given creation time and status
// falls inside the window.
func (w Window) Contains(createdAt time.Time, status models.OrderStatus) bool {
	if createdAt.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !createdAt.Before(w.End) {
		return false
	}
	for _, s := range w.Statuses {
		if s == status {
			return true
		}
	}
	return false
}
