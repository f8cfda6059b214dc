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

type TemplateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) schedule.TemplateRepository {
	return &TemplateRepositoryImpl{db: db}
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, t schedule.Template) (schedule.Template, error) {
	querier := GetQuerier(ctx, r.db)

	t.ID = uuid.NewString()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO schedule_templates (id, name, description, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.Exec(ctx, query, t.ID, t.Name, t.Description, t.IsActive, t.CreatedBy, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.Template{}, schedule.ErrTemplateNameExists
		}
		return schedule.Template{}, err
	}
	return t, nil
}

func (r *TemplateRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Template, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active, created_by, created_at, updated_at FROM schedule_templates WHERE id = $1`

	var t schedule.Template
	err := querier.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Template{}, schedule.ErrTemplateNotFound
		}
		return schedule.Template{}, err
	}

	days, err := r.loadDays(ctx, querier, t.ID)
	if err != nil {
		return schedule.Template{}, err
	}
	t.Days = days
	return t, nil
}

func (r *TemplateRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]schedule.Template, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active, created_by, created_at, updated_at FROM schedule_templates`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []schedule.Template
	for rows.Next() {
		var t schedule.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, t schedule.Template) (schedule.Template, error) {
	querier := GetQuerier(ctx, r.db)

	t.UpdatedAt = time.Now()

	query := `
		UPDATE schedule_templates
		SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query, t.ID, t.Name, t.Description, t.IsActive, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.Template{}, schedule.ErrTemplateNameExists
		}
		return schedule.Template{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.Template{}, schedule.ErrTemplateNotFound
	}
	return t, nil
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM schedule_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepositoryImpl) loadDays(ctx context.Context, querier database.Querier, templateID string) ([]schedule.TemplateDay, error) {
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
