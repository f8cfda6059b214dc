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

type FixedScheduleRepositoryImpl struct {
	db *database.DB
}

func NewFixedScheduleRepository(db *database.DB) schedule.FixedScheduleRepository {
	return &FixedScheduleRepositoryImpl{db: db}
}

const fixedScheduleColumns = `id, employee_id, day_of_week, is_working_day, start_time, end_time, break_start_time, break_end_time, notes, created_at, updated_at`

func (r *FixedScheduleRepositoryImpl) Create(ctx context.Context, fs schedule.FixedSchedule) (schedule.FixedSchedule, error) {
	querier := GetQuerier(ctx, r.db)

	fs.ID = uuid.NewString()
	now := time.Now()
	fs.CreatedAt = now
	fs.UpdatedAt = now

	query := `
		INSERT INTO fixed_schedules (id, employee_id, day_of_week, is_working_day, start_time, end_time, break_start_time, break_end_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.Exec(ctx, query,
		fs.ID, fs.EmployeeID, fs.DayOfWeek, fs.IsWorkingDay,
		clockOrNil(fs.StartTime), clockOrNil(fs.EndTime),
		clockOrNil(fs.BreakStartTime), clockOrNil(fs.BreakEndTime),
		fs.Notes, fs.CreatedAt, fs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.FixedSchedule{}, schedule.ErrFixedScheduleExists
		}
		return schedule.FixedSchedule{}, err
	}
	return fs, nil
}

func (r *FixedScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.FixedSchedule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + fixedScheduleColumns + ` FROM fixed_schedules WHERE id = $1`
	fs, err := scanFixedSchedule(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
		}
		return schedule.FixedSchedule{}, err
	}
	return fs, nil
}

func (r *FixedScheduleRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]schedule.FixedSchedule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + fixedScheduleColumns + ` FROM fixed_schedules WHERE employee_id = $1 ORDER BY day_of_week`
	rows, err := querier.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.FixedSchedule
	for rows.Next() {
		fs, err := scanFixedSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, fs)
	}
	return schedules, rows.Err()
}

func (r *FixedScheduleRepositoryImpl) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayOfWeek int) (schedule.FixedSchedule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + fixedScheduleColumns + ` FROM fixed_schedules WHERE employee_id = $1 AND day_of_week = $2`
	fs, err := scanFixedSchedule(querier.QueryRow(ctx, query, employeeID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
		}
		return schedule.FixedSchedule{}, err
	}
	return fs, nil
}

func (r *FixedScheduleRepositoryImpl) Update(ctx context.Context, fs schedule.FixedSchedule) (schedule.FixedSchedule, error) {
	querier := GetQuerier(ctx, r.db)

	fs.UpdatedAt = time.Now()

	query := `
		UPDATE fixed_schedules
		SET is_working_day = $2, start_time = $3, end_time = $4, break_start_time = $5, break_end_time = $6, notes = $7, updated_at = $8
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query,
		fs.ID, fs.IsWorkingDay,
		clockOrNil(fs.StartTime), clockOrNil(fs.EndTime),
		clockOrNil(fs.BreakStartTime), clockOrNil(fs.BreakEndTime),
		fs.Notes, fs.UpdatedAt,
	)
	if err != nil {
		return schedule.FixedSchedule{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
	}
	return fs, nil
}

func (r *FixedScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM fixed_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrFixedScheduleNotFound
	}
	return nil
}

func scanFixedSchedule(row pgx.Row) (schedule.FixedSchedule, error) {
	var fs schedule.FixedSchedule
	var start, end, breakStart, breakEnd *string

	err := row.Scan(
		&fs.ID, &fs.EmployeeID, &fs.DayOfWeek, &fs.IsWorkingDay,
		&start, &end, &breakStart, &breakEnd,
		&fs.Notes, &fs.CreatedAt, &fs.UpdatedAt,
	)
	if err != nil {
		return schedule.FixedSchedule{}, err
	}

	fs.StartTime = parseClockOrNil(start)
	fs.EndTime = parseClockOrNil(end)
	fs.BreakStartTime = parseClockOrNil(breakStart)
	fs.BreakEndTime = parseClockOrNil(breakEnd)
	return fs, nil
}

// clockOrNil serializes a clock-only time as HH:MM for a TIME column.
func clockOrNil(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func parseClockOrNil(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("15:04", *s)
	if err != nil {
		// TIME columns may come back with seconds.
		t, err = time.Parse("15:04:05", *s)
		if err != nil {
			return nil
		}
	}
	return &t
}
