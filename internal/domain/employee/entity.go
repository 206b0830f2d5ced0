package employee

import (
	"time"
)

type Employee struct {
	ID         string
	Name       string
	SecretCode string
	HourlyRate float64

	// EarnedAmount is a denormalized cache of lifetime earnings, refreshed
	// by the cron job and opportunistically on roster reads. It is never
	// authoritative: the punch log and hourly rate can always re-derive it.
	EarnedAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
