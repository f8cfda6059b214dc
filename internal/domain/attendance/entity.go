package attendance

import "time"

// Record is one employee work day: a check-in and, once the day is closed,
// a check-out with the worked minutes net of unpaid breaks.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInAt     time.Time
	CheckOutAt    *time.Time
	WorkedMinutes *int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
