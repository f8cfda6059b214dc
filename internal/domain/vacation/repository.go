package vacation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	// GetOverlapping returns non-rejected requests intersecting the range.
	GetOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Request, error)
	Update(ctx context.Context, req Request) (Request, error)
}
