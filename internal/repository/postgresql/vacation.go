package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/vacation"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
)

type VacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &VacationRepositoryImpl{db: db}
}

const vacationColumns = `id, employee_id, start_date, end_date, reason, status, reviewed_by, reviewed_at, created_at, updated_at`

func (r *VacationRepositoryImpl) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	querier := GetQuerier(ctx, r.db)

	req.ID = uuid.NewString()
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO vacation_requests (id, employee_id, start_date, end_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.Exec(ctx, query,
		req.ID, req.EmployeeID, req.StartDate, req.EndDate, req.Reason,
		string(req.Status), req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return vacation.Request{}, err
	}
	return req, nil
}

func (r *VacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacation_requests WHERE id = $1`
	req, err := scanVacationRequest(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, err
	}
	return req, nil
}

func (r *VacationRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]vacation.Request, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacation_requests WHERE employee_id = $1 ORDER BY start_date DESC`
	rows, err := querier.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *VacationRepositoryImpl) GetOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]vacation.Request, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacation_requests WHERE employee_id = $1 AND status != $2 AND start_date <= $4 AND end_date >= $3`
	rows, err := querier.Query(ctx, query, employeeID, string(vacation.StatusRejected), startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *VacationRepositoryImpl) Update(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	querier := GetQuerier(ctx, r.db)

	req.UpdatedAt = time.Now()

	query := `
		UPDATE vacation_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $5
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query, req.ID, string(req.Status), req.ReviewedBy, req.ReviewedAt, req.UpdatedAt)
	if err != nil {
		return vacation.Request{}, err
	}
	if tag.RowsAffected() == 0 {
		return vacation.Request{}, vacation.ErrRequestNotFound
	}
	return req, nil
}

func scanVacationRequest(row pgx.Row) (vacation.Request, error) {
	var req vacation.Request
	var status string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason,
		&status, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return vacation.Request{}, err
	}

	req.Status = vacation.Status(status)
	return req, nil
}
