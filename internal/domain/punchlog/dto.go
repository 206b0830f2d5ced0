package punchlog

import (
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// ========================================
// LOG EDITOR DTOs
// ========================================

// EventResponse is one row of the admin log editor. Index is the position
// in the chronological log at read time; ID is the stable identifier the
// mutation eventually runs against.
type EventResponse struct {
	Index     int    `json:"index"`
	ID        string `json:"id,omitempty"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
}

type ReplaceEventRequest struct {
	EmployeeID string `json:"-"`
	Index      int    `json:"-"`
	Timestamp  string `json:"timestamp"` // RFC3339
	Kind       string `json:"kind"`
}

func (r *ReplaceEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if !punch.Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of START_WORK, START_BREAK, STOP_BREAK, STOP_WORK, IN, OUT",
		})
	}

	if r.Index < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "index",
			Message: "index must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
