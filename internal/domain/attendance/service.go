package attendance

import (
	"context"
	"time"
)

type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]RecordResponse, error)
}
