package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/attendance"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
)

type AttendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &AttendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, check_in_at, check_out_at, worked_minutes, notes, created_at, updated_at`

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	rec.ID = uuid.NewString()
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in_at, check_out_at, worked_minutes, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.CheckInAt, rec.CheckOutAt,
		rec.WorkedMinutes, rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *AttendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 AND date = $2`
	rec, err := scanAttendanceRecord(querier.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *AttendanceRepositoryImpl) GetByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`
	rows, err := querier.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *AttendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	rec.UpdatedAt = time.Now()

	query := `
		UPDATE attendance_records
		SET check_out_at = $2, worked_minutes = $3, notes = $4, updated_at = $5
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query, rec.ID, rec.CheckOutAt, rec.WorkedMinutes, rec.Notes, rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}
	if tag.RowsAffected() == 0 {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func scanAttendanceRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInAt, &rec.CheckOutAt,
		&rec.WorkedMinutes, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}
