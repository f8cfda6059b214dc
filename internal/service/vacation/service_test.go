package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/vacation"
)

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRequestRepo struct {
	requests map[string]vacation.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]vacation.Request)}
}

func (r *fakeRequestRepo) Create(_ context.Context, req vacation.Request) (vacation.Request, error) {
	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (vacation.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return vacation.Request{}, vacation.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) GetByEmployee(_ context.Context, employeeID string) ([]vacation.Request, error) {
	var result []vacation.Request
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) GetOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) ([]vacation.Request, error) {
	var result []vacation.Request
	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.Status == vacation.StatusRejected {
			continue
		}
		if !req.StartDate.After(endDate) && !req.EndDate.Before(startDate) {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req vacation.Request) (vacation.Request, error) {
	if _, ok := r.requests[req.ID]; !ok {
		return vacation.Request{}, vacation.ErrRequestNotFound
	}
	req.UpdatedAt = time.Now()
	r.requests[req.ID] = req
	return req, nil
}

type fakeExceptionRepo struct {
	exceptions map[string]schedule.DailyException
}

func newFakeExceptionRepo() *fakeExceptionRepo {
	return &fakeExceptionRepo{exceptions: make(map[string]schedule.DailyException)}
}

func (r *fakeExceptionRepo) Create(_ context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	for _, existing := range r.exceptions {
		if existing.EmployeeID == de.EmployeeID && existing.Date.Equal(de.Date) && existing.DeletedAt == nil {
			return schedule.DailyException{}, schedule.ErrDailyExceptionExists
		}
	}
	de.ID = uuid.NewString()
	de.CreatedAt = time.Now()
	de.UpdatedAt = de.CreatedAt
	r.exceptions[de.ID] = de
	return de, nil
}

func (r *fakeExceptionRepo) GetByID(_ context.Context, id string) (schedule.DailyException, error) {
	de, ok := r.exceptions[id]
	if !ok || de.DeletedAt != nil {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	return de, nil
}

func (r *fakeExceptionRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (schedule.DailyException, error) {
	for _, de := range r.exceptions {
		if de.EmployeeID == employeeID && de.Date.Equal(date) && de.DeletedAt == nil {
			return de, nil
		}
	}
	return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
}

func (r *fakeExceptionRepo) GetByEmployeeRange(_ context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.DailyException, error) {
	var result []schedule.DailyException
	for _, de := range r.exceptions {
		if de.EmployeeID == employeeID && !de.Date.Before(startDate) && !de.Date.After(endDate) && de.DeletedAt == nil {
			result = append(result, de)
		}
	}
	return result, nil
}

func (r *fakeExceptionRepo) CountByEmployeeYear(_ context.Context, employeeID string, year int) (int, error) {
	count := 0
	for _, de := range r.exceptions {
		if de.EmployeeID == employeeID && de.Date.Year() == year && de.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeExceptionRepo) Update(_ context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	if _, ok := r.exceptions[de.ID]; !ok {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	r.exceptions[de.ID] = de
	return de, nil
}

func (r *fakeExceptionRepo) Approve(_ context.Context, id, approvedBy string) (schedule.DailyException, error) {
	de, ok := r.exceptions[id]
	if !ok {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	now := time.Now()
	de.ApprovedBy = &approvedBy
	de.ApprovedAt = &now
	r.exceptions[id] = de
	return de, nil
}

func (r *fakeExceptionRepo) SoftDelete(_ context.Context, id string) error {
	de, ok := r.exceptions[id]
	if !ok {
		return schedule.ErrDailyExceptionNotFound
	}
	now := time.Now()
	de.DeletedAt = &now
	r.exceptions[id] = de
	return nil
}

func newTestService() (vacation.Service, *fakeRequestRepo, *fakeExceptionRepo) {
	repo := newFakeRequestRepo()
	exceptions := newFakeExceptionRepo()
	return NewVacationService(fakeTxRunner{}, repo, exceptions), repo, exceptions
}

func TestCreate(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
		Reason:     "summer holidays",
	})

	require.NoError(t, err)
	assert.Equal(t, string(vacation.StatusPending), resp.Status)
	assert.Equal(t, "2025-07-14", resp.StartDate)
	assert.Equal(t, "2025-07-18", resp.EndDate)
	assert.Nil(t, resp.ReviewedBy)
}

func TestCreate_Overlapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-17",
		EndDate:    "2025-07-21",
	})
	assert.ErrorIs(t, err, vacation.ErrOverlappingDates)
}

func TestCreate_RejectedDoesNotBlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	first, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, first.ID, "mgr-1")
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	assert.NoError(t, err)
}

func TestApprove_MaterializesExceptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, exceptions := newTestService()

	created, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
		Reason:     "summer holidays",
	})
	require.NoError(t, err)

	// One covered day already has an exception; approval leaves it alone.
	existing, err := exceptions.Create(ctx, schedule.DailyException{
		EmployeeID:    "emp-1",
		Date:          time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC),
		ExceptionType: schedule.ExceptionDayOff,
		CreatedBy:     "mgr-1",
	})
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, created.ID, "mgr-1")

	require.NoError(t, err)
	assert.Equal(t, string(vacation.StatusApproved), resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, "mgr-1", *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)

	materialized, err := exceptions.GetByEmployeeRange(ctx, "emp-1",
		time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, materialized, 5)

	vacationDays := 0
	for _, de := range materialized {
		if de.ID == existing.ID {
			assert.Equal(t, schedule.ExceptionDayOff, de.ExceptionType)
			continue
		}
		vacationDays++
		assert.Equal(t, schedule.ExceptionVacation, de.ExceptionType)
		assert.False(t, de.IsWorkingDay)
		assert.Equal(t, "summer holidays", de.Notes)
		require.NotNil(t, de.ApprovedBy)
		assert.Equal(t, "mgr-1", *de.ApprovedBy)
	}
	assert.Equal(t, 4, vacationDays)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "mgr-1")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "mgr-1")
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)
}

func TestApprove_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), "missing", "mgr-1")

	assert.ErrorIs(t, err, vacation.ErrRequestNotFound)
}

func TestReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, exceptions := newTestService()

	created, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, created.ID, "mgr-1")

	require.NoError(t, err)
	assert.Equal(t, string(vacation.StatusRejected), resp.Status)

	// Rejection does not touch the schedule.
	count, err := exceptions.CountByEmployeeYear(ctx, "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListByEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, vacation.CreateRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-07-14",
		EndDate:    "2025-07-18",
	})
	require.NoError(t, err)

	requests, err := svc.ListByEmployee(ctx, "emp-1")

	require.NoError(t, err)
	assert.Len(t, requests, 1)

	requests, err = svc.ListByEmployee(ctx, "emp-2")
	require.NoError(t, err)
	assert.Empty(t, requests)
}
