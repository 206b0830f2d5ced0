package punchlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
)

type PunchLogServiceImpl struct {
	employee.EmployeeRepository
	punchlog.PunchLogRepository
	loc *time.Location
}

func NewPunchLogService(
	employeeRepo employee.EmployeeRepository,
	punchLogRepo punchlog.PunchLogRepository,
	loc *time.Location,
) punchlog.PunchLogService {
	return &PunchLogServiceImpl{
		EmployeeRepository: employeeRepo,
		PunchLogRepository: punchLogRepo,
		loc:                loc,
	}
}

// ListEvents implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) ListEvents(ctx context.Context, employeeID string) ([]punchlog.EventResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	log, err := s.PunchLogRepository.GetFullLog(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load punch log: %w", err)
	}

	responses := make([]punchlog.EventResponse, 0, len(log))
	for i, ev := range log {
		responses = append(responses, punchlog.EventResponse{
			Index:     i,
			ID:        ev.ID,
			Timestamp: ev.Timestamp.In(s.loc).Format(time.RFC3339),
			Kind:      string(ev.Kind),
		})
	}
	return responses, nil
}

// ReplaceEvent implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) ReplaceEvent(ctx context.Context, req punchlog.ReplaceEventRequest) (punchlog.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return punchlog.EventResponse{}, err
	}

	ts, _ := time.Parse(time.RFC3339, req.Timestamp)
	ev := punch.Event{
		Timestamp: ts.UTC(),
		Kind:      punch.Kind(req.Kind),
	}

	if err := s.PunchLogRepository.ReplaceEventAt(ctx, req.EmployeeID, req.Index, ev); err != nil {
		if errors.Is(err, punchlog.ErrEventIndexOutOfRange) {
			return punchlog.EventResponse{}, punchlog.ErrEventIndexOutOfRange
		}
		return punchlog.EventResponse{}, fmt.Errorf("failed to replace punch event: %w", err)
	}

	return punchlog.EventResponse{
		Index:     req.Index,
		Timestamp: ev.Timestamp.In(s.loc).Format(time.RFC3339),
		Kind:      req.Kind,
	}, nil
}

// DeleteEvent implements punchlog.PunchLogService.
func (s *PunchLogServiceImpl) DeleteEvent(ctx context.Context, employeeID string, index int) error {
	if index < 0 {
		return punchlog.ErrEventIndexOutOfRange
	}

	if err := s.PunchLogRepository.DeleteEventAt(ctx, employeeID, index); err != nil {
		if errors.Is(err, punchlog.ErrEventIndexOutOfRange) {
			return punchlog.ErrEventIndexOutOfRange
		}
		return fmt.Errorf("failed to delete punch event: %w", err)
	}
	return nil
}
