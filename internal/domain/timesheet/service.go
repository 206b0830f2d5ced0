package timesheet

import "context"

// TimesheetService derives reports from the raw punch logs. Nothing here is
// persisted except the opportunistic earned-amount cache refresh; every
// report recomputes from the full log.
type TimesheetService interface {
	// GetTimesheet returns the per-day breakdown and totals for one
	// employee over an inclusive date range.
	GetTimesheet(ctx context.Context, filter TimesheetFilter) (TimesheetResponse, error)

	// GetRoster returns live state, today's hours and lifetime earnings for
	// every employee, refreshing the earned-amount caches as it goes.
	GetRoster(ctx context.Context) (RosterResponse, error)

	// ListAnomalies reports forgotten stops across the whole roster.
	ListAnomalies(ctx context.Context) (AnomalyReportResponse, error)

	// RefreshEarnedAmounts recomputes every employee's cached lifetime
	// earnings. The cron job calls this on an interval.
	RefreshEarnedAmounts(ctx context.Context) error
}
