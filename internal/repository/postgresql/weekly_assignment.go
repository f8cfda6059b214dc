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

type WeeklyAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyAssignmentRepository(db *database.DB) schedule.WeeklyAssignmentRepository {
	return &WeeklyAssignmentRepositoryImpl{db: db}
}

const weeklyAssignmentColumns = `id, employee_id, template_id, year, week_number, start_date, end_date, notes, created_by, created_at, updated_at`

func (r *WeeklyAssignmentRepositoryImpl) Create(ctx context.Context, wa schedule.WeeklyAssignment) (schedule.WeeklyAssignment, error) {
	querier := GetQuerier(ctx, r.db)

	wa.ID = uuid.NewString()
	now := time.Now()
	wa.CreatedAt = now
	wa.UpdatedAt = now

	query := `
		INSERT INTO weekly_schedule_assignments (id, employee_id, template_id, year, week_number, start_date, end_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.Exec(ctx, query,
		wa.ID, wa.EmployeeID, wa.TemplateID, wa.Year, wa.WeekNumber,
		wa.StartDate, wa.EndDate, wa.Notes, wa.CreatedBy, wa.CreatedAt, wa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentExists
		}
		return schedule.WeeklyAssignment{}, err
	}
	return wa, nil
}

func (r *WeeklyAssignmentRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WeeklyAssignment, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + weeklyAssignmentColumns + ` FROM weekly_schedule_assignments WHERE id = $1`
	wa, err := scanWeeklyAssignment(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
		}
		return schedule.WeeklyAssignment{}, err
	}
	return wa, nil
}

func (r *WeeklyAssignmentRepositoryImpl) GetByEmployeeWeek(ctx context.Context, employeeID string, year, weekNumber int) (schedule.WeeklyAssignment, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + weeklyAssignmentColumns + ` FROM weekly_schedule_assignments WHERE employee_id = $1 AND year = $2 AND week_number = $3`
	wa, err := scanWeeklyAssignment(querier.QueryRow(ctx, query, employeeID, year, weekNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
		}
		return schedule.WeeklyAssignment{}, err
	}
	return wa, nil
}

func (r *WeeklyAssignmentRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]schedule.WeeklyAssignment, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + weeklyAssignmentColumns + ` FROM weekly_schedule_assignments WHERE employee_id = $1 AND year = $2 ORDER BY week_number`
	rows, err := querier.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.WeeklyAssignment
	for rows.Next() {
		wa, err := scanWeeklyAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, wa)
	}
	return assignments, rows.Err()
}

func (r *WeeklyAssignmentRepositoryImpl) Update(ctx context.Context, wa schedule.WeeklyAssignment) (schedule.WeeklyAssignment, error) {
	querier := GetQuerier(ctx, r.db)

	wa.UpdatedAt = time.Now()

	query := `
		UPDATE weekly_schedule_assignments
		SET template_id = $2, start_date = $3, end_date = $4, notes = $5, updated_at = $6
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query, wa.ID, wa.TemplateID, wa.StartDate, wa.EndDate, wa.Notes, wa.UpdatedAt)
	if err != nil {
		return schedule.WeeklyAssignment{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
	}
	return wa, nil
}

func (r *WeeklyAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM weekly_schedule_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWeeklyAssignmentNotFound
	}
	return nil
}

func (r *WeeklyAssignmentRepositoryImpl) CountByEmployeeYear(ctx context.Context, employeeID string, year int) (int, error) {
	querier := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM weekly_schedule_assignments WHERE employee_id = $1 AND year = $2`
	if err := querier.QueryRow(ctx, query, employeeID, year).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WeeklyAssignmentRepositoryImpl) CountByTemplate(ctx context.Context, templateID string) (int, error) {
	querier := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM weekly_schedule_assignments WHERE template_id = $1`
	if err := querier.QueryRow(ctx, query, templateID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WeeklyAssignmentRepositoryImpl) DistinctTemplates(ctx context.Context, employeeID string, year int) ([]string, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT template_id FROM weekly_schedule_assignments WHERE employee_id = $1 AND year = $2 AND template_id IS NOT NULL`
	rows, err := querier.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templateIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		templateIDs = append(templateIDs, id)
	}
	return templateIDs, rows.Err()
}

func scanWeeklyAssignment(row pgx.Row) (schedule.WeeklyAssignment, error) {
	var wa schedule.WeeklyAssignment
	err := row.Scan(
		&wa.ID, &wa.EmployeeID, &wa.TemplateID, &wa.Year, &wa.WeekNumber,
		&wa.StartDate, &wa.EndDate, &wa.Notes, &wa.CreatedBy, &wa.CreatedAt, &wa.UpdatedAt,
	)
	if err != nil {
		return schedule.WeeklyAssignment{}, err
	}
	return wa, nil
}
