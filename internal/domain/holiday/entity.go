package holiday

import "time"

type HolidayRequestStatus string

const (
	HolidayStatusPending   HolidayRequestStatus = "pending"
	HolidayStatusApproved  HolidayRequestStatus = "approved"
	HolidayStatusRejected  HolidayRequestStatus = "rejected"
	HolidayStatusCancelled HolidayRequestStatus = "cancelled"
)

// HolidayRequest entity
type HolidayRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status      HolidayRequestStatus
	SubmittedAt time.Time
	ReviewedBy  *string
	ReviewedAt  *time.Time
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}
