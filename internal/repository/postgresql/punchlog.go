package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/database"
	"github.com/punchclock-hq/punchclock-backend/internal/punch"
)

type punchLogRepository struct {
	db *database.DB
}

func NewPunchLogRepository(db *database.DB) punchlog.PunchLogRepository {
	return &punchLogRepository{db: db}
}

// GetFullLog implements punchlog.PunchLogRepository.
func (r *punchLogRepository) GetFullLog(ctx context.Context, employeeID string) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	// created_at breaks ties between events sharing the same timestamp,
	// so the chronological index stays deterministic.
	query := `
		SELECT id, ts, kind
		FROM punch_events
		WHERE employee_id = $1
		ORDER BY ts ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load punch log: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var ev punch.Event
		var kind string
		if err := rows.Scan(&ev.ID, &ev.Timestamp, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		ev.Kind = punch.Kind(kind)
		ev.Timestamp = ev.Timestamp.UTC()
		events = append(events, ev)
	}

	return events, rows.Err()
}

// AppendEvent implements punchlog.PunchLogRepository.
func (r *punchLogRepository) AppendEvent(ctx context.Context, employeeID string, ev punch.Event) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (id, employee_id, ts, kind)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, ev.ID, employeeID, ev.Timestamp, string(ev.Kind)); err != nil {
		return punch.Event{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	return ev, nil
}

// ReplaceEventAt implements punchlog.PunchLogRepository.
func (r *punchLogRepository) ReplaceEventAt(ctx context.Context, employeeID string, index int, ev punch.Event) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		id, err := eventIDAt(ctx, tx, employeeID, index)
		if err != nil {
			return err
		}

		query := `
			UPDATE punch_events
			SET ts = $2, kind = $3
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, query, id, ev.Timestamp, string(ev.Kind)); err != nil {
			return fmt.Errorf("failed to replace punch event: %w", err)
		}
		return nil
	})
}

// DeleteEventAt implements punchlog.PunchLogRepository.
func (r *punchLogRepository) DeleteEventAt(ctx context.Context, employeeID string, index int) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		id, err := eventIDAt(ctx, tx, employeeID, index)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM punch_events WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete punch event: %w", err)
		}
		return nil
	})
}

// eventIDAt resolves a chronological display index to the stable event id
// inside the transaction, so the subsequent mutation is immune to the log
// shifting underneath it.
func eventIDAt(ctx context.Context, tx pgx.Tx, employeeID string, index int) (string, error) {
	if index < 0 {
		return "", punchlog.ErrEventIndexOutOfRange
	}

	query := `
		SELECT id
		FROM punch_events
		WHERE employee_id = $1
		ORDER BY ts ASC, created_at ASC
		OFFSET $2
		LIMIT 1
	`

	var id string
	err := tx.QueryRow(ctx, query, employeeID, index).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", punchlog.ErrEventIndexOutOfRange
		}
		return "", fmt.Errorf("failed to resolve event index: %w", err)
	}
	return id, nil
}
