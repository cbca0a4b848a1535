package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// DashboardService computes aggregate counts for one owner.
//
// Status counts come straight from the repository. Week/month counts are
// computed in-process: the applied date is stored as text, so filtering in
// the database would also count records whose date never parses. Records
// with an unparsable date are skipped from the time-window counts and
// logged; they still count toward the total.
type DashboardService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewDashboardService(repo ports.ApplicationRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

func (s *DashboardService) Summary(ctx context.Context, ownerID string, now time.Time) (*ports.Summary, error) {
	total, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := &ports.Summary{Total: total}

	for _, c := range []struct {
		status domain.ApplicationStatus
		dest   *int64
	}{
		{domain.StatusAccepted, &summary.Accepted},
		{domain.StatusInterviewing, &summary.Interviewing},
		{domain.StatusRejected, &summary.Rejected},
	} {
		n, err := s.repo.CountByStatus(ctx, ownerID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	apps, err := s.repo.List(ctx, ports.ListFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, app := range apps {
		applied, err := app.AppliedOn()
		if err != nil {
			s.logger.Warn().
				Str("application_id", app.ID).
				Str("date", app.AppliedDate).
				Msg("skipping unparsable applied date")
			continue
		}
		// The applied date has no time-of-day, so compare against the
		// window start in the same location.
		applied = time.Date(applied.Year(), applied.Month(), applied.Day(), 0, 0, 0, 0, now.Location())
		if !applied.Before(weekStart) {
			summary.WeekCount++
		}
		if !applied.Before(monthStart) {
			summary.MonthCount++
		}
	}

	return summary, nil
}

// startOfWeek returns the start of the dashboard week: 00:00 of the most
// recent Sunday relative to now. An application filed on Sunday still counts
// toward the week shown on Monday.
func startOfWeek(now time.Time) time.Time {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
}
