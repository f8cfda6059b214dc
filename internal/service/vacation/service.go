package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/vacation"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
)

type vacationServiceImpl struct {
	tx            database.TxRunner
	repo          vacation.Repository
	exceptionRepo schedule.DailyExceptionRepository
	now           func() time.Time
}

func NewVacationService(tx database.TxRunner, repo vacation.Repository, exceptionRepo schedule.DailyExceptionRepository) vacation.Service {
	return &vacationServiceImpl{
		tx:            tx,
		repo:          repo,
		exceptionRepo: exceptionRepo,
		now:           time.Now,
	}
}

// Create implements vacation.Service. Overlap with another pending or
// approved request for the same employee is rejected.
func (s *vacationServiceImpl) Create(ctx context.Context, req vacation.CreateRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlapping, err := s.repo.GetOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if len(overlapping) > 0 {
		return vacation.RequestResponse{}, vacation.ErrOverlappingDates
	}

	created, err := s.repo.Create(ctx, vacation.Request{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     vacation.StatusPending,
	})
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}
	return mapRequestToResponse(created), nil
}

// ListByEmployee implements vacation.Service.
func (s *vacationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.RequestResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}

	requests, err := s.repo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation requests: %w", err)
	}

	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapRequestToResponse(req))
	}
	return responses, nil
}

// Approve implements vacation.Service. Approval and the vacation daily
// exceptions it materializes commit in one transaction: either the request
// flips to approved and every covered day gets its exception, or nothing
// changes. Days that already carry an exception are left untouched.
func (s *vacationServiceImpl) Approve(ctx context.Context, id, reviewedBy string) (vacation.RequestResponse, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == vacation.ErrRequestNotFound {
			return vacation.RequestResponse{}, err
		}
		return vacation.RequestResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	if req.Status != vacation.StatusPending {
		return vacation.RequestResponse{}, vacation.ErrAlreadyProcessed
	}

	now := s.now()
	var approved vacation.Request

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
			_, err := s.exceptionRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, d)
			switch {
			case err == nil:
				continue
			case err != schedule.ErrDailyExceptionNotFound:
				return err
			}

			de := schedule.DailyException{
				EmployeeID:    req.EmployeeID,
				Date:          d,
				ExceptionType: schedule.ExceptionVacation,
				IsWorkingDay:  false,
				Notes:         req.Reason,
				CreatedBy:     reviewedBy,
				ApprovedBy:    &reviewedBy,
				ApprovedAt:    &now,
			}
			if _, err := s.exceptionRepo.Create(ctx, de); err != nil {
				return err
			}
		}

		req.Status = vacation.StatusApproved
		req.ReviewedBy = &reviewedBy
		req.ReviewedAt = &now
		approved, err = s.repo.Update(ctx, req)
		return err
	})
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to approve vacation request: %w", err)
	}
	return mapRequestToResponse(approved), nil
}

// Reject implements vacation.Service.
func (s *vacationServiceImpl) Reject(ctx context.Context, id, reviewedBy string) (vacation.RequestResponse, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == vacation.ErrRequestNotFound {
			return vacation.RequestResponse{}, err
		}
		return vacation.RequestResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	if req.Status != vacation.StatusPending {
		return vacation.RequestResponse{}, vacation.ErrAlreadyProcessed
	}

	now := s.now()
	req.Status = vacation.StatusRejected
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &now

	rejected, err := s.repo.Update(ctx, req)
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to reject vacation request: %w", err)
	}
	return mapRequestToResponse(rejected), nil
}

func mapRequestToResponse(req vacation.Request) vacation.RequestResponse {
	resp := vacation.RequestResponse{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate.Format("2006-01-02"),
		EndDate:    req.EndDate.Format("2006-01-02"),
		Reason:     req.Reason,
		Status:     string(req.Status),
		ReviewedBy: req.ReviewedBy,
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  req.UpdatedAt.Format(time.RFC3339),
	}
	if req.ReviewedAt != nil {
		s := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}
