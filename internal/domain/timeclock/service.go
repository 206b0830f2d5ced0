package timeclock

import "context"

// TimeclockService is the employee-facing punch-clock flow: the secret code
// is the only credential, matching the shared terminal the clock runs on.
type TimeclockService interface {
	// Punch validates the requested action against the employee's live
	// state and appends one event to the log.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// Status returns the live state plus today's totals.
	Status(ctx context.Context, req StatusRequest) (StatusResponse, error)
}
