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

type BreakRepositoryImpl struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) schedule.BreakRepository {
	return &BreakRepositoryImpl{db: db}
}

const breakColumns = `id, parent_type, parent_id, name, start_time, end_time, break_type, is_paid, is_required, duration_minutes, is_flexible, flexibility_minutes, sort_order, created_at, updated_at`

func (r *BreakRepositoryImpl) Create(ctx context.Context, b schedule.Break) (schedule.Break, error) {
	querier := GetQuerier(ctx, r.db)
	return insertBreak(ctx, querier, b)
}

func (r *BreakRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Break, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + breakColumns + ` FROM schedule_breaks WHERE id = $1`
	b, err := scanBreak(querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Break{}, schedule.ErrBreakNotFound
		}
		return schedule.Break{}, err
	}
	return b, nil
}

func (r *BreakRepositoryImpl) GetByParent(ctx context.Context, parent schedule.ParentRef) ([]schedule.Break, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + breakColumns + ` FROM schedule_breaks WHERE parent_type = $1 AND parent_id = $2 ORDER BY sort_order, start_time`
	rows, err := querier.Query(ctx, query, string(parent.Kind), parent.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breaks []schedule.Break
	for rows.Next() {
		b, err := scanBreak(rows)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, b)
	}
	return breaks, rows.Err()
}

// ReplaceForParent deletes and reinserts the parent's break set in one
// transaction so readers never see it half-replaced.
func (r *BreakRepositoryImpl) ReplaceForParent(ctx context.Context, parent schedule.ParentRef, breaks []schedule.Break) ([]schedule.Break, error) {
	var replaced []schedule.Break

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		querier := GetQuerier(ctx, r.db)

		_, err := querier.Exec(ctx, `DELETE FROM schedule_breaks WHERE parent_type = $1 AND parent_id = $2`, string(parent.Kind), parent.ID)
		if err != nil {
			return err
		}

		replaced = make([]schedule.Break, 0, len(breaks))
		for _, b := range breaks {
			b.Parent = parent
			inserted, err := insertBreak(ctx, querier, b)
			if err != nil {
				return err
			}
			replaced = append(replaced, inserted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return replaced, nil
}

func (r *BreakRepositoryImpl) Update(ctx context.Context, b schedule.Break) (schedule.Break, error) {
	querier := GetQuerier(ctx, r.db)

	b.UpdatedAt = time.Now()

	query := `
		UPDATE schedule_breaks
		SET name = $2, start_time = $3, end_time = $4, break_type = $5, is_paid = $6, is_required = $7, duration_minutes = $8, is_flexible = $9, flexibility_minutes = $10, sort_order = $11, updated_at = $12
		WHERE id = $1`

	tag, err := querier.Exec(ctx, query,
		b.ID, b.Name, b.StartTime.Format("15:04"), b.EndTime.Format("15:04"),
		string(b.BreakType), b.IsPaid, b.IsRequired, b.DurationMinutes,
		b.IsFlexible, b.FlexibilityMinutes, b.SortOrder, b.UpdatedAt,
	)
	if err != nil {
		return schedule.Break{}, err
	}
	if tag.RowsAffected() == 0 {
		return schedule.Break{}, schedule.ErrBreakNotFound
	}
	return b, nil
}

func (r *BreakRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM schedule_breaks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrBreakNotFound
	}
	return nil
}

func insertBreak(ctx context.Context, querier database.Querier, b schedule.Break) (schedule.Break, error) {
	b.ID = uuid.NewString()
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	query := `
		INSERT INTO schedule_breaks (id, parent_type, parent_id, name, start_time, end_time, break_type, is_paid, is_required, duration_minutes, is_flexible, flexibility_minutes, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := querier.Exec(ctx, query,
		b.ID, string(b.Parent.Kind), b.Parent.ID, b.Name,
		b.StartTime.Format("15:04"), b.EndTime.Format("15:04"),
		string(b.BreakType), b.IsPaid, b.IsRequired, b.DurationMinutes,
		b.IsFlexible, b.FlexibilityMinutes, b.SortOrder, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return schedule.Break{}, err
	}
	return b, nil
}

func scanBreak(row pgx.Row) (schedule.Break, error) {
	var b schedule.Break
	var parentType, breakType string
	var start, end string

	err := row.Scan(
		&b.ID, &parentType, &b.Parent.ID, &b.Name, &start, &end,
		&breakType, &b.IsPaid, &b.IsRequired, &b.DurationMinutes,
		&b.IsFlexible, &b.FlexibilityMinutes, &b.SortOrder, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return schedule.Break{}, err
	}

	b.Parent.Kind = schedule.ParentKind(parentType)
	b.BreakType = schedule.BreakType(breakType)
	if t := parseClockOrNil(&start); t != nil {
		b.StartTime = *t
	}
	if t := parseClockOrNil(&end); t != nil {
		b.EndTime = *t
	}
	return b, nil
}
