package vacation

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee vacation petition over an inclusive date range.
// Approval materializes one vacation daily exception per covered day, which
// is what the schedule resolver actually consumes.
type Request struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
