package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/employee"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, secret_code, hourly_rate, earned_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.SecretCode,
		emp.HourlyRate,
		emp.EarnedAmount,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, secret_code, hourly_rate, earned_amount, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.SecretCode, &emp.HourlyRate, &emp.EarnedAmount,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetBySecretCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetBySecretCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, secret_code, hourly_rate, earned_amount, created_at, updated_at
		FROM employees
		WHERE secret_code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.Name, &emp.SecretCode, &emp.HourlyRate, &emp.EarnedAmount,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by secret code: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, secret_code, hourly_rate, earned_amount, created_at, updated_at
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.SecretCode, &emp.HourlyRate, &emp.EarnedAmount,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, secret_code = $3, hourly_rate = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, emp.ID, emp.Name, emp.SecretCode, emp.HourlyRate)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SecretCodeTaken implements employee.EmployeeRepository.
func (r *employeeRepository) SecretCodeTaken(ctx context.Context, code string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE secret_code = $1 AND ($2 = '' OR id != $2::uuid)
		)
	`

	var taken bool
	if err := q.QueryRow(ctx, query, code, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check secret code: %w", err)
	}

	return taken, nil
}

// UpdateEarnedAmount implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateEarnedAmount(ctx context.Context, id string, amount float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET earned_amount = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to update earned amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
