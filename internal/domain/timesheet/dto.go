package timesheet

import (
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type TimesheetFilter struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakRow struct {
	Start string  `json:"start"`
	Stop  *string `json:"stop,omitempty"`
}

type SessionRow struct {
	Start string  `json:"start"`
	Stop  *string `json:"stop,omitempty"`

	// StopNextDay flags a stop that falls on the calendar day after the
	// start, for the "Stop Work (Next Day)" column. The session itself
	// stays attributed to the start day.
	StopNextDay bool       `json:"stop_next_day,omitempty"`
	Unmatched   bool       `json:"unmatched,omitempty"`
	Breaks      []BreakRow `json:"breaks,omitempty"`
}

type DayRow struct {
	Date        string       `json:"date"`
	Sessions    []SessionRow `json:"sessions,omitempty"`
	WorkedHours float64      `json:"worked_hours"`
	BreakHours  float64      `json:"break_hours"`
	BreakCount  int          `json:"break_count"`
}

type TimesheetResponse struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	HourlyRate   float64  `json:"hourly_rate"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Days         []DayRow `json:"days"`

	// Paid breaks are already inside WorkedHours; EarnedAmount is
	// WorkedHours times the hourly rate, never negative.
	WorkedHours  float64 `json:"worked_hours"`
	BreakHours   float64 `json:"break_hours"`
	BreakCount   int     `json:"break_count"`
	EarnedAmount float64 `json:"earned_amount"`
}

type RosterRow struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	Working          bool    `json:"working"`
	OnBreak          bool    `json:"on_break"`
	WorkedHoursToday float64 `json:"worked_hours_today"`
	HourlyRate       float64 `json:"hourly_rate"`
	EarnedAmount     float64 `json:"earned_amount"`
}

type RosterResponse struct {
	Employees []RosterRow `json:"employees"`
}

type AnomalyRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Kind         string `json:"kind"` // work or break
	Date         string `json:"date"`
	Start        string `json:"start"`
}

type AnomalyReportResponse struct {
	Anomalies []AnomalyRow `json:"anomalies"`
}
