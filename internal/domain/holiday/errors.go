package holiday

import "errors"

// Holiday domain errors
var (
	ErrHolidayRequestNotFound  = errors.New("holiday request not found")
	ErrHolidayAlreadyProcessed = errors.New("holiday request has already been approved or rejected")
)
