package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	GetByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
}
