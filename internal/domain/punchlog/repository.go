// Package punchlog owns persistence and admin editing of the raw punch
// event log. Events get a stable UUID at write time, so edits and deletes
// resolve a display index against the chronological order once and then
// mutate by id instead of trusting the position to stay put.
package punchlog

import (
	"context"

	"github.com/punchclock-hq/punchclock-backend/internal/punch"
)

// PunchLogRepository is the persistence gateway for one employee's event
// log. There is no cross-document transaction and no write arbitration:
// concurrent writers are last-write-wins, which is acceptable for a
// single-location team with low write contention.
type PunchLogRepository interface {
	// GetFullLog returns the employee's entire log in chronological order.
	GetFullLog(ctx context.Context, employeeID string) ([]punch.Event, error)

	// AppendEvent stores one new event and returns it with its generated id.
	AppendEvent(ctx context.Context, employeeID string, ev punch.Event) (punch.Event, error)

	// ReplaceEventAt overwrites the event at the given chronological index.
	ReplaceEventAt(ctx context.Context, employeeID string, index int, ev punch.Event) error

	// DeleteEventAt removes the event at the given chronological index.
	DeleteEventAt(ctx context.Context, employeeID string, index int) error
}
