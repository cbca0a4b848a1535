package ports

import (
	"context"
	"time"
)

// Summary is the dashboard view for one owner at a point in time.
type Summary struct {
	Total        int64
	WeekCount    int64 // applied on/after the most recent Sunday 00:00
	MonthCount   int64 // applied on/after the 1st of the current month 00:00
	Accepted     int64
	Interviewing int64
	Rejected     int64
}

// DashboardService computes aggregate counts for one owner.
type DashboardService interface {
	Summary(ctx context.Context, ownerID string, now time.Time) (*Summary, error)
}
