package punchlog

import "context"

// PunchLogService exposes the admin log editor. Aggregates are never stored,
// so a mutation is visible on the next read without any incremental update.
type PunchLogService interface {
	ListEvents(ctx context.Context, employeeID string) ([]EventResponse, error)

	ReplaceEvent(ctx context.Context, req ReplaceEventRequest) (EventResponse, error)

	DeleteEvent(ctx context.Context, employeeID string, index int) error
}
