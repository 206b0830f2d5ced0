package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetBySecretCode looks an employee up by the 8-digit punch-clock code.
	GetBySecretCode(ctx context.Context, code string) (Employee, error)

	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id string) error

	// SecretCodeTaken reports whether another employee already uses code.
	// The store never enforced code uniqueness on its own; this check is the
	// application-layer invariant.
	SecretCodeTaken(ctx context.Context, code string, excludeID string) (bool, error)

	// UpdateEarnedAmount refreshes the denormalized earnings cache.
	UpdateEarnedAmount(ctx context.Context, id string, amount float64) error
}
