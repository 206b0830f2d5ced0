package response

import (
	"errors"
	"net/http"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/auth"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/holiday"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timeclock"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSecretCodeExists):
		Conflict(w, "Secret code already in use")

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrUnknownSecretCode):
		NotFound(w, "Unknown secret code")
	case errors.Is(err, timeclock.ErrAlreadyWorking):
		Conflict(w, "Already working")
	case errors.Is(err, timeclock.ErrNotWorking):
		Conflict(w, "Not currently working")
	case errors.Is(err, timeclock.ErrAlreadyOnBreak):
		Conflict(w, "Already on break")
	case errors.Is(err, timeclock.ErrNotOnBreak):
		Conflict(w, "Not currently on break")

	// Log editor errors
	case errors.Is(err, punchlog.ErrEventIndexOutOfRange):
		NotFound(w, "Event index out of range")
	case errors.Is(err, punchlog.ErrInvalidEventKind):
		BadRequest(w, "Invalid event kind", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayRequestNotFound):
		NotFound(w, "Holiday request not found")
	case errors.Is(err, holiday.ErrHolidayAlreadyProcessed):
		Conflict(w, "Holiday request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
