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

type TemplateDayRepositoryImpl struct {
	db *database.DB
}

func NewTemplateDayRepository(db *database.DB) schedule.TemplateDayRepository {
	return &TemplateDayRepositoryImpl{db: db}
}

const templateDayColumns = `id, template_id, day_of_week, is_working_day, start_time, end_time, break_start_time, break_end_time, notes, created_at, updated_at`

func (r *TemplateDayRepositoryImpl) Create(ctx context.Context, td schedule.TemplateDay) (schedule.TemplateDay, error) {
	querier := GetQuerier(ctx, r.db)

	td.ID = uuid.NewString()
	now := time.Now()
	td.CreatedAt = now
	td.UpdatedAt = now

	query := `
		INSERT INTO template_days (id, template_id, day_of_week, is_working_day, start_time, end_time, break_start_time, break_end_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.Exec(ctx, query,
		td.ID, td.TemplateID, td.DayOfWeek, td.IsWorkingDay,
		clockOrNil(td.StartTime), clockOrNil(td.EndTime),
		clockOrNil(td.BreakStartTime), clockOrNil(td.BreakEndTime),
		td.Notes, td.CreatedAt, td.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.TemplateDay{}, schedule.ErrTemplateDayExists
		}
		return schedule.TemplateDay{}, err
	}
	return td, nil
}

func (r *TemplateDayRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.TemplateDay, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + templateDayColumns + ` FROM template_days WHERE id = $1`
	td, err := scanTemplateDay(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
		}
		return schedule.TemplateDay{}, err
	}
	return td, nil
}

func (r *TemplateDayRepositoryImpl) GetByTemplate(ctx context.Context, templateID string) ([]schedule.TemplateDay, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + templateDayColumns + ` FROM template_days WHERE template_id = $1 ORDER BY day_of_week`
	rows, err := querier.Query(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []schedule.TemplateDay
	for rows.Next() {
		td, err := scanTemplateDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, td)
	}
	return days, rows.Err()
}

func (r *TemplateDayRepositoryImpl) GetByTemplateAndDay(ctx context.Context, templateID string, dayOfWeek int) (schedule.TemplateDay, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + templateDayColumns + ` FROM template_days WHERE template_id = $1 AND day_of_week = $2`
	td, err := scanTemplateDay(querier.QueryRow(ctx, query, templateID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
		}
		return schedule.TemplateDay{}, err
	}
	return td, nil
}

func (r *TemplateDayRepositoryImpl) Update(ctx context.Context, td schedule.TemplateDay) (schedule.TemplateDay, error) {
	querier := GetQuerier(ctx, r.db)

	td.UpdatedAt = time.Now()

	query := `
		UPDATE template_days
		SET is_working_day = $2, start_time = $3, end_time = $4, break_start_time = $5, break_end_time = $6, notes = $7, updated_at = $8
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query,
		td.ID, td.IsWorkingDay,
		clockOrNil(td.StartTime), clockOrNil(td.EndTime),
		clockOrNil(td.BreakStartTime), clockOrNil(td.BreakEndTime),
		td.Notes, td.UpdatedAt,
	)
	if err != nil {
		return schedule.TemplateDay{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
	}
	return td, nil
}

func (r *TemplateDayRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM template_days WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrTemplateDayNotFound
	}
	return nil
}

func scanTemplateDay(row pgx.Row) (schedule.TemplateDay, error) {
	var td schedule.TemplateDay
	var start, end, breakStart, breakEnd *string

	err := row.Scan(
		&td.ID, &td.TemplateID, &td.DayOfWeek, &td.IsWorkingDay,
		&start, &end, &breakStart, &breakEnd,
		&td.Notes, &td.CreatedAt, &td.UpdatedAt,
	)
	if err != nil {
		return schedule.TemplateDay{}, err
	}

	td.StartTime = parseClockOrNil(start)
	td.EndTime = parseClockOrNil(end)
	td.BreakStartTime = parseClockOrNil(breakStart)
	td.BreakEndTime = parseClockOrNil(breakEnd)
	return td, nil
}
