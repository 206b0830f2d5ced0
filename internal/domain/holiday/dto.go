package holiday

import (
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// ========================================
// HOLIDAY DTOs
// ========================================

type SubmitHolidayRequest struct {
	SecretCode string `json:"secret_code"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *SubmitHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSecretCode(r.SecretCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_code",
			Message: "secret_code must be exactly 8 digits",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewHolidayRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes,omitempty"`
}

// CancelHolidayRequest withdraws a pending request. The secret code stands
// in for authentication on the employee surface, same as punching.
type CancelHolidayRequest struct {
	ID         string `json:"-"`
	SecretCode string `json:"secret_code"`
}

func (r *CancelHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSecretCode(r.SecretCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_code",
			Message: "secret_code must be exactly 8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayFilter struct {
	EmployeeID *string
	Status     *HolidayRequestStatus
}

type HolidayResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	SubmittedAt  string  `json:"submitted_at"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
