package timeclock

import (
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// ========================================
// TIMECLOCK DTOs
// ========================================

type PunchRequest struct {
	SecretCode string `json:"secret_code"`
	Action     string `json:"action"` // START_WORK, START_BREAK, STOP_BREAK, STOP_WORK
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSecretCode(r.SecretCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_code",
			Message: "secret_code must be exactly 8 digits",
		})
	}

	kind := punch.Kind(r.Action)
	if !kind.Valid() || kind.IsLegacy() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of START_WORK, START_BREAK, STOP_BREAK, STOP_WORK",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatusRequest struct {
	SecretCode string `json:"secret_code"`
}

func (r *StatusRequest) Validate() error {
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

type StatusResponse struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Working        bool    `json:"working"`
	OnBreak        bool    `json:"on_break"`
	LastAction     *string `json:"last_action,omitempty"`
	LastActionTime *string `json:"last_action_time,omitempty"`

	// Today's totals, recomputed from the full log on every call.
	WorkedHoursToday float64 `json:"worked_hours_today"`
	BreakHoursToday  float64 `json:"break_hours_today"`
	BreakCountToday  int     `json:"break_count_today"`
}

type PunchResponse struct {
	EmployeeName string         `json:"employee_name"`
	Action       string         `json:"action"`
	Timestamp    string         `json:"timestamp"`
	Status       StatusResponse `json:"status"`
}
