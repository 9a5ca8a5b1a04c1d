package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/mgoncalo/centavo/internal/money"
)

// Allocation is the spending cap for one expense category in one calendar
// month. Month is always the first day of the month at midnight UTC; there
// is at most one allocation per (owner, category, month).
type Allocation struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string // loaded via JOIN
	Amount       money.Amount
	Month        time.Time
}

// NormalizeMonth collapses any date to the first day of its month, UTC.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
