package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/holiday"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timeclock"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewHolidayService(
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository:  holidayRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

// Submit implements holiday.HolidayService.
func (s *HolidayServiceImpl) Submit(ctx context.Context, req holiday.SubmitHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetBySecretCode(ctx, req.SecretCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return holiday.HolidayResponse{}, timeclock.ErrUnknownSecretCode
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to look up employee by secret code: %w", err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.HolidayRepository.Create(ctx, holiday.HolidayRequest{
		EmployeeID:  emp.ID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      holiday.HolidayStatusPending,
		SubmittedAt: s.now().UTC(),
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	created.EmployeeName = &emp.Name
	return mapHolidayToResponse(created), nil
}

// Cancel implements holiday.HolidayService.
func (s *HolidayServiceImpl) Cancel(ctx context.Context, req holiday.CancelHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetBySecretCode(ctx, req.SecretCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return holiday.HolidayResponse{}, timeclock.ErrUnknownSecretCode
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to look up employee by secret code: %w", err)
	}

	request, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayRequestNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayRequestNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday request: %w", err)
	}

	// Someone else's request looks like a missing one.
	if request.EmployeeID != emp.ID {
		return holiday.HolidayResponse{}, holiday.ErrHolidayRequestNotFound
	}

	if request.Status != holiday.HolidayStatusPending {
		return holiday.HolidayResponse{}, holiday.ErrHolidayAlreadyProcessed
	}

	request.Status = holiday.HolidayStatusCancelled
	if err := s.HolidayRepository.Update(ctx, request); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday request: %w", err)
	}

	updated, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get updated holiday request: %w", err)
	}
	return mapHolidayToResponse(updated), nil
}

// Get implements holiday.HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	req, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayRequestNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayRequestNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday request: %w", err)
	}
	return mapHolidayToResponse(req), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, filter holiday.HolidayFilter) ([]holiday.HolidayResponse, error) {
	requests, err := s.HolidayRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapHolidayToResponse(req))
	}
	return responses, nil
}

// Approve implements holiday.HolidayService.
func (s *HolidayServiceImpl) Approve(ctx context.Context, req holiday.ReviewHolidayRequest) (holiday.HolidayResponse, error) {
	return s.review(ctx, req, holiday.HolidayStatusApproved)
}

// Reject implements holiday.HolidayService.
func (s *HolidayServiceImpl) Reject(ctx context.Context, req holiday.ReviewHolidayRequest) (holiday.HolidayResponse, error) {
	return s.review(ctx, req, holiday.HolidayStatusRejected)
}

func (s *HolidayServiceImpl) review(ctx context.Context, req holiday.ReviewHolidayRequest, status holiday.HolidayRequestStatus) (holiday.HolidayResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return holiday.HolidayResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	request, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayRequestNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayRequestNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday request: %w", err)
	}

	if request.Status != holiday.HolidayStatusPending {
		return holiday.HolidayResponse{}, holiday.ErrHolidayAlreadyProcessed
	}

	now := s.now().UTC()
	request.Status = status
	request.ReviewedBy = &userID
	request.ReviewedAt = &now
	request.Notes = req.Notes

	if err := s.HolidayRepository.Update(ctx, request); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday request: %w", err)
	}

	updated, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get updated holiday request: %w", err)
	}
	return mapHolidayToResponse(updated), nil
}

func mapHolidayToResponse(req holiday.HolidayRequest) holiday.HolidayResponse {
	var employeeName string
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	resp := holiday.HolidayResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Status:       string(req.Status),
		SubmittedAt:  req.SubmittedAt.Format("2006-01-02 15:04:05"),
		ReviewedBy:   req.ReviewedBy,
		Notes:        req.Notes,
	}
	if req.ReviewedAt != nil {
		reviewedAt := req.ReviewedAt.Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
