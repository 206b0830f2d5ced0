package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The store does not enforce secret-code uniqueness; this check is the
	// application-layer invariant that keeps the lookup key unambiguous.
	taken, err := s.EmployeeRepository.SecretCodeTaken(ctx, req.SecretCode, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check secret code uniqueness: %w", err)
	}
	if taken {
		return employee.EmployeeResponse{}, employee.ErrSecretCodeExists
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:       req.Name,
		SecretCode: req.SecretCode,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.SecretCode != nil && *req.SecretCode != emp.SecretCode {
		taken, err := s.EmployeeRepository.SecretCodeTaken(ctx, *req.SecretCode, emp.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check secret code uniqueness: %w", err)
		}
		if taken {
			return employee.EmployeeResponse{}, employee.ErrSecretCodeExists
		}
		emp.SecretCode = *req.SecretCode
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = *req.HourlyRate
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}
	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		SecretCode:   emp.SecretCode,
		HourlyRate:   emp.HourlyRate,
		EarnedAmount: emp.EarnedAmount,
		CreatedAt:    emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
