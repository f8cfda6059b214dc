package vacation

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (RequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]RequestResponse, error)
	Approve(ctx context.Context, id, reviewedBy string) (RequestResponse, error)
	Reject(ctx context.Context, id, reviewedBy string) (RequestResponse, error)
}
