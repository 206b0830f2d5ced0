package employee

import (
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	SecretCode string  `json:"secret_code"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidSecretCode(r.SecretCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_code",
			Message: "secret_code must be exactly 8 digits",
		})
	}

	if r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string   `json:"-"`
	Name       *string  `json:"name,omitempty"`
	SecretCode *string  `json:"secret_code,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.SecretCode != nil && !validator.IsValidSecretCode(*r.SecretCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_code",
			Message: "secret_code must be exactly 8 digits",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SecretCode   string  `json:"secret_code"`
	HourlyRate   float64 `json:"hourly_rate"`
	EarnedAmount float64 `json:"earned_amount"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
