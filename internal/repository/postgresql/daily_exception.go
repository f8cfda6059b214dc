package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
)

type DailyExceptionRepositoryImpl struct {
	db *database.DB
}

func NewDailyExceptionRepository(db *database.DB) schedule.DailyExceptionRepository {
	return &DailyExceptionRepositoryImpl{db: db}
}

const dailyExceptionColumns = `id, employee_id, date, exception_type, is_working_day, start_time, end_time, notes, created_by, approved_by, approved_at, deleted_at, created_at, updated_at`

func (r *DailyExceptionRepositoryImpl) Create(ctx context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	de.ID = uuid.NewString()
	now := time.Now()
	de.CreatedAt = now
	de.UpdatedAt = now

	query := `
		INSERT INTO daily_exceptions (id, employee_id, date, exception_type, is_working_day, start_time, end_time, notes, created_by, approved_by, approved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := querier.Exec(ctx, query,
		de.ID, de.EmployeeID, de.Date, string(de.ExceptionType), de.IsWorkingDay,
		clockOrNil(de.StartTime), clockOrNil(de.EndTime),
		de.Notes, de.CreatedBy, de.ApprovedBy, de.ApprovedAt, de.CreatedAt, de.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.DailyException{}, schedule.ErrDailyExceptionExists
		}
		return schedule.DailyException{}, err
	}
	return de, nil
}

func (r *DailyExceptionRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExceptionColumns + ` FROM daily_exceptions WHERE id = $1 AND deleted_at IS NULL`
	de, err := scanDailyException(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
		}
		return schedule.DailyException{}, err
	}
	return de, nil
}

func (r *DailyExceptionRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExceptionColumns + ` FROM daily_exceptions WHERE employee_id = $1 AND date = $2 AND deleted_at IS NULL`
	de, err := scanDailyException(querier.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
		}
		return schedule.DailyException{}, err
	}
	return de, nil
}

func (r *DailyExceptionRepositoryImpl) GetByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExceptionColumns + ` FROM daily_exceptions WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND deleted_at IS NULL ORDER BY date`
	rows, err := querier.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exceptions []schedule.DailyException
	for rows.Next() {
		de, err := scanDailyException(rows)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, de)
	}
	return exceptions, rows.Err()
}

func (r *DailyExceptionRepositoryImpl) CountByEmployeeYear(ctx context.Context, employeeID string, year int) (int, error) {
	querier := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM daily_exceptions WHERE employee_id = $1 AND EXTRACT(YEAR FROM date) = $2 AND deleted_at IS NULL`
	if err := querier.QueryRow(ctx, query, employeeID, year).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DailyExceptionRepositoryImpl) Update(ctx context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	de.UpdatedAt = time.Now()

	query := `
		UPDATE daily_exceptions
		SET exception_type = $2, is_working_day = $3, start_time = $4, end_time = $5, notes = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := querier.Exec(ctx, query,
		de.ID, string(de.ExceptionType), de.IsWorkingDay,
		clockOrNil(de.StartTime), clockOrNil(de.EndTime),
		de.Notes, de.UpdatedAt,
	)
	if err != nil {
		return schedule.DailyException{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	return de, nil
}

func (r *DailyExceptionRepositoryImpl) Approve(ctx context.Context, id, approvedBy string) (schedule.DailyException, error) {
	querier := GetQuerier(ctx, r.db)

	now := time.Now()
	query := `
		UPDATE daily_exceptions
		SET approved_by = $2, approved_at = $3, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL AND approved_at IS NULL`

	tag, err := querier.Exec(ctx, query, id, approvedBy, now)
	if err != nil {
		return schedule.DailyException{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *DailyExceptionRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	query := `UPDATE daily_exceptions SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	tag, err := querier.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrDailyExceptionNotFound
	}
	return nil
}

func scanDailyException(row pgx.Row) (schedule.DailyException, error) {
	var de schedule.DailyException
	var excType string
	var start, end *string

	err := row.Scan(
		&de.ID, &de.EmployeeID, &de.Date, &excType, &de.IsWorkingDay,
		&start, &end, &de.Notes, &de.CreatedBy,
		&de.ApprovedBy, &de.ApprovedAt, &de.DeletedAt, &de.CreatedAt, &de.UpdatedAt,
	)
	if err != nil {
		return schedule.DailyException{}, err
	}

	de.ExceptionType = schedule.ExceptionType(excType)
	de.StartTime = parseClockOrNil(start)
	de.EndTime = parseClockOrNil(end)
	return de, nil
}
