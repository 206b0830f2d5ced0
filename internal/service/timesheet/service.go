package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timesheet"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
)

type TimesheetServiceImpl struct {
	employee.EmployeeRepository
	punchlog.PunchLogRepository
	loc *time.Location
	now func() time.Time
}

func NewTimesheetService(
	employeeRepo employee.EmployeeRepository,
	punchLogRepo punchlog.PunchLogRepository,
	loc *time.Location,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		EmployeeRepository: employeeRepo,
		PunchLogRepository: punchLogRepo,
		loc:                loc,
		now:                time.Now,
	}
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.TimesheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.TimesheetResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to load punch log: %w", err)
	}

	// Date-only bounds: start of the first day through end of the last day.
	rangeStart := s.parseDay(filter.StartDate)
	rangeEnd := s.parseDay(filter.EndDate).AddDate(0, 0, 1).Add(-time.Nanosecond)
	now := s.now().UTC()

	resp := timesheet.TimesheetResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		HourlyRate:   emp.HourlyRate,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
	}

	for day := rangeStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		totals := punch.RangeTotals(log, day, dayEnd, now, s.loc)

		// Day rows keep the day-bucketed break pairing the per-day view
		// always showed; it can differ from the session-nested figures at
		// cross-midnight boundaries.
		breakHours, breakCount := punch.DayBreakTotals(log, day, now, s.loc)
		row := timesheet.DayRow{
			Date:        day.Format("2006-01-02"),
			WorkedHours: totals.WorkedHours,
			BreakHours:  breakHours,
			BreakCount:  breakCount,
		}
		for _, sess := range punch.SessionsInRange(log, day, dayEnd, s.loc) {
			row.Sessions = append(row.Sessions, s.mapSession(sess))
		}
		resp.Days = append(resp.Days, row)

		resp.WorkedHours += totals.WorkedHours
		resp.BreakHours += totals.BreakHours
		resp.BreakCount += totals.BreakCount
	}

	resp.EarnedAmount = punch.Earnings(resp.WorkedHours, emp.HourlyRate)
	return resp, nil
}

// GetRoster implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetRoster(ctx context.Context) (timesheet.RosterResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return timesheet.RosterResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := s.now().UTC()
	dayStart := punch.DayStart(now, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	resp := timesheet.RosterResponse{Employees: make([]timesheet.RosterRow, 0, len(employees))}
	for _, emp := range employees {
		log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
		if err != nil {
			return timesheet.RosterResponse{}, fmt.Errorf("failed to load punch log for %s: %w", emp.ID, err)
		}

		state := punch.LiveState(log, s.loc)
		today := punch.RangeTotals(log, dayStart, dayEnd, now, s.loc)
		earned := s.lifetimeEarnings(log, emp.HourlyRate, now)

		// Opportunistic cache refresh on roster reads; a failed write only
		// leaves the cache stale, never wrong on the next read.
		if earned != emp.EarnedAmount {
			_ = s.EmployeeRepository.UpdateEarnedAmount(ctx, emp.ID, earned)
		}

		resp.Employees = append(resp.Employees, timesheet.RosterRow{
			EmployeeID:       emp.ID,
			EmployeeName:     emp.Name,
			Working:          state.Working,
			OnBreak:          state.OnBreak,
			WorkedHoursToday: today.WorkedHours,
			HourlyRate:       emp.HourlyRate,
			EarnedAmount:     earned,
		})
	}
	return resp, nil
}

// ListAnomalies implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListAnomalies(ctx context.Context) (timesheet.AnomalyReportResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return timesheet.AnomalyReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := s.now().UTC()
	resp := timesheet.AnomalyReportResponse{Anomalies: []timesheet.AnomalyRow{}}
	for _, emp := range employees {
		log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
		if err != nil {
			return timesheet.AnomalyReportResponse{}, fmt.Errorf("failed to load punch log for %s: %w", emp.ID, err)
		}

		for _, a := range punch.Anomalies(log, now, s.loc) {
			resp.Anomalies = append(resp.Anomalies, timesheet.AnomalyRow{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Kind:         a.Kind,
				Date:         a.Day.Format("2006-01-02"),
				Start:        a.Start.In(s.loc).Format(time.RFC3339),
			})
		}
	}
	return resp, nil
}

// RefreshEarnedAmounts implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RefreshEarnedAmounts(ctx context.Context) error {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	now := s.now().UTC()
	for _, emp := range employees {
		log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to load punch log for %s: %w", emp.ID, err)
		}
		earned := s.lifetimeEarnings(log, emp.HourlyRate, now)
		if err := s.EmployeeRepository.UpdateEarnedAmount(ctx, emp.ID, earned); err != nil {
			return fmt.Errorf("failed to update earned amount for %s: %w", emp.ID, err)
		}
	}
	return nil
}

// lifetimeEarnings recomputes total earnings over the whole log. Paid
// breaks are already inside worked hours, so the rate applies once.
func (s *TimesheetServiceImpl) lifetimeEarnings(log []punch.Event, rate float64, now time.Time) float64 {
	if len(log) == 0 {
		return 0
	}
	norm := punch.Normalize(log, s.loc)
	from := punch.DayStart(norm[0].Timestamp, s.loc)
	totals := punch.RangeTotals(log, from, now, now, s.loc)
	return punch.Earnings(totals.WorkedHours, rate)
}

func (s *TimesheetServiceImpl) parseDay(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *TimesheetServiceImpl) mapSession(sess punch.Session) timesheet.SessionRow {
	row := timesheet.SessionRow{
		Start:     sess.Start.In(s.loc).Format(time.RFC3339),
		Unmatched: sess.Unmatched,
	}
	if sess.Stop != nil {
		stop := sess.Stop.In(s.loc).Format(time.RFC3339)
		row.Stop = &stop
		row.StopNextDay = punch.DayStart(*sess.Stop, s.loc).After(punch.DayStart(sess.Start, s.loc))
	}
	for _, b := range sess.Breaks {
		br := timesheet.BreakRow{Start: b.Start.In(s.loc).Format(time.RFC3339)}
		if b.Stop != nil {
			stop := b.Stop.In(s.loc).Format(time.RFC3339)
			br.Stop = &stop
		}
		row.Breaks = append(row.Breaks, br)
	}
	return row
}
