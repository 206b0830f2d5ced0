package holiday

import "context"

// HolidayService is the holiday request workflow: employees submit with
// their secret code, admins review. Status transitions are plain writes,
// there is no quota arithmetic behind them.
type HolidayService interface {
	Submit(ctx context.Context, req SubmitHolidayRequest) (HolidayResponse, error)

	// Cancel withdraws the employee's own pending request.
	Cancel(ctx context.Context, req CancelHolidayRequest) (HolidayResponse, error)

	Get(ctx context.Context, id string) (HolidayResponse, error)

	List(ctx context.Context, filter HolidayFilter) ([]HolidayResponse, error)

	Approve(ctx context.Context, req ReviewHolidayRequest) (HolidayResponse, error)

	Reject(ctx context.Context, req ReviewHolidayRequest) (HolidayResponse, error)
}
