package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/holiday"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, req holiday.HolidayRequest) (holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (employee_id, start_date, end_date, reason, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.StartDate,
		req.EndDate,
		req.Reason,
		string(req.Status),
		req.SubmittedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return holiday.HolidayRequest{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	return req, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT hr.id, hr.employee_id, hr.start_date, hr.end_date, hr.reason,
		       hr.status, hr.submitted_at, hr.reviewed_by, hr.reviewed_at, hr.notes,
		       hr.created_at, hr.updated_at, e.name
		FROM holiday_requests hr
		JOIN employees e ON e.id = hr.employee_id
		WHERE hr.id = $1
	`

	req, err := scanHolidayRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.HolidayRequest{}, holiday.ErrHolidayRequestNotFound
		}
		return holiday.HolidayRequest{}, fmt.Errorf("failed to get holiday request: %w", err)
	}

	return req, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, filter holiday.HolidayFilter) ([]holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT hr.id, hr.employee_id, hr.start_date, hr.end_date, hr.reason,
		       hr.status, hr.submitted_at, hr.reviewed_by, hr.reviewed_at, hr.notes,
		       hr.created_at, hr.updated_at, e.name
		FROM holiday_requests hr
		JOIN employees e ON e.id = hr.employee_id
		WHERE ($1::uuid IS NULL OR hr.employee_id = $1)
		  AND ($2::text IS NULL OR hr.status = $2)
		ORDER BY hr.submitted_at DESC
	`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := q.Query(ctx, query, filter.EmployeeID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	defer rows.Close()

	var requests []holiday.HolidayRequest
	for rows.Next() {
		req, err := scanHolidayRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, req holiday.HolidayRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, string(req.Status), req.ReviewedBy, req.ReviewedAt, req.Notes)
	if err != nil {
		return fmt.Errorf("failed to update holiday request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayRequestNotFound
	}

	return nil
}

func scanHolidayRequest(row pgx.Row) (holiday.HolidayRequest, error) {
	var req holiday.HolidayRequest
	var status string
	var employeeName string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
		&status, &req.SubmittedAt, &req.ReviewedBy, &req.ReviewedAt, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt, &employeeName,
	)
	if err != nil {
		return holiday.HolidayRequest{}, err
	}

	req.Status = holiday.HolidayRequestStatus(status)
	req.EmployeeName = &employeeName
	return req, nil
}
