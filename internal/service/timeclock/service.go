package timeclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timeclock"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
)

type TimeclockServiceImpl struct {
	employee.EmployeeRepository
	punchlog.PunchLogRepository
	loc *time.Location
	now func() time.Time
}

func NewTimeclockService(
	employeeRepo employee.EmployeeRepository,
	punchLogRepo punchlog.PunchLogRepository,
	loc *time.Location,
) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		EmployeeRepository: employeeRepo,
		PunchLogRepository: punchLogRepo,
		loc:                loc,
		now:                time.Now,
	}
}

// Punch implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Punch(ctx context.Context, req timeclock.PunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetBySecretCode(ctx, req.SecretCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.PunchResponse{}, timeclock.ErrUnknownSecretCode
		}
		return timeclock.PunchResponse{}, fmt.Errorf("failed to look up employee by secret code: %w", err)
	}

	log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
	if err != nil {
		return timeclock.PunchResponse{}, fmt.Errorf("failed to load punch log: %w", err)
	}

	state := punch.LiveState(log, s.loc)
	kind := punch.Kind(req.Action)
	if err := validateTransition(state, kind); err != nil {
		return timeclock.PunchResponse{}, err
	}

	nowUTC := s.now().UTC()
	ev := punch.Event{
		ID:        uuid.NewString(),
		Timestamp: nowUTC,
		Kind:      kind,
	}
	if _, err := s.PunchLogRepository.AppendEvent(ctx, emp.ID, ev); err != nil {
		return timeclock.PunchResponse{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	status := s.buildStatus(emp, append(log, ev), nowUTC)
	return timeclock.PunchResponse{
		EmployeeName: emp.Name,
		Action:       string(kind),
		Timestamp:    nowUTC.In(s.loc).Format(time.RFC3339),
		Status:       status,
	}, nil
}

// Status implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Status(ctx context.Context, req timeclock.StatusRequest) (timeclock.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.StatusResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetBySecretCode(ctx, req.SecretCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.StatusResponse{}, timeclock.ErrUnknownSecretCode
		}
		return timeclock.StatusResponse{}, fmt.Errorf("failed to look up employee by secret code: %w", err)
	}

	log, err := s.PunchLogRepository.GetFullLog(ctx, emp.ID)
	if err != nil {
		return timeclock.StatusResponse{}, fmt.Errorf("failed to load punch log: %w", err)
	}

	return s.buildStatus(emp, log, s.now().UTC()), nil
}

// validateTransition rejects actions that make no sense from the current
// live state. The reducer itself tolerates anything already stored
// (duplicate starts close-and-reopen, orphan stops are dropped); the API
// edge just refuses to write new garbage.
func validateTransition(state punch.State, kind punch.Kind) error {
	switch kind {
	case punch.KindStartWork:
		if state.Working {
			return timeclock.ErrAlreadyWorking
		}
	case punch.KindStopWork:
		if !state.Working {
			return timeclock.ErrNotWorking
		}
	case punch.KindStartBreak:
		if !state.Working {
			return timeclock.ErrNotWorking
		}
		if state.OnBreak {
			return timeclock.ErrAlreadyOnBreak
		}
	case punch.KindStopBreak:
		if !state.OnBreak {
			return timeclock.ErrNotOnBreak
		}
	}
	return nil
}

func (s *TimeclockServiceImpl) buildStatus(emp employee.Employee, log []punch.Event, now time.Time) timeclock.StatusResponse {
	state := punch.LiveState(log, s.loc)

	dayStart := punch.DayStart(now, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	totals := punch.RangeTotals(log, dayStart, dayEnd, now, s.loc)

	resp := timeclock.StatusResponse{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.Name,
		Working:          state.Working,
		OnBreak:          state.OnBreak,
		WorkedHoursToday: totals.WorkedHours,
		BreakHoursToday:  totals.BreakHours,
		BreakCountToday:  totals.BreakCount,
	}
	if state.LastAction != "" {
		action := string(state.LastAction)
		at := state.LastActionTime.In(s.loc).Format(time.RFC3339)
		resp.LastAction = &action
		resp.LastActionTime = &at
	}
	return resp
}
