package cron

import (
	"context"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/timesheet"
)

// RegisterEarningsJob schedules the periodic refresh of every employee's
// cached earned amount. The cache is a convenience for roster reads and is
// always re-derivable from the punch log and hourly rate.
func RegisterEarningsJob(s *Scheduler, svc timesheet.TimesheetService, interval time.Duration) {
	s.AddJob("earnings-cache-refresh", interval, func(ctx context.Context) error {
		return svc.RefreshEarnedAmounts(ctx)
	})
}
