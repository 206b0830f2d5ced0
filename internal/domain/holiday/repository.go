package holiday

import "context"

// HolidayRepository defines data access methods for holiday requests.
type HolidayRepository interface {
	Create(ctx context.Context, req HolidayRequest) (HolidayRequest, error)

	GetByID(ctx context.Context, id string) (HolidayRequest, error)

	// List returns requests, optionally narrowed by status and/or employee.
	List(ctx context.Context, filter HolidayFilter) ([]HolidayRequest, error)

	Update(ctx context.Context, req HolidayRequest) error
}
