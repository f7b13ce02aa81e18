package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

const activityColumns = `id, collaborator_id, day, time, end_time, description,
	completed, completed_at, created_at, updated_at`

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	err := row.Scan(&a.ID, &a.CollaboratorID, &a.Day, &a.Time, &a.EndTime, &a.Description,
		&a.Completed, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateActivity inserta una actividad.
func (s *Store) CreateActivity(ctx context.Context, a *entity.Activity) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO activities (id, collaborator_id, day, time, end_time, description,
			completed, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.CollaboratorID, a.Day, a.Time, a.EndTime, a.Description,
		a.Completed, a.CompletedAt, a.CreatedAt, a.UpdatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, ""):
		return fmt.Errorf("insert activity %s: %w", a.ID, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("insert activity: colaborador %s: %w", a.CollaboratorID, domain.ErrNotFound)
	default:
		return fmt.Errorf("insert activity: %w", err)
	}
}

// GetActivity obtiene una actividad por ID; (nil, nil) si no existe.
func (s *Store) GetActivity(ctx context.Context, id string) (*entity.Activity, error) {
	a, err := scanActivity(s.pool.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// UpdateActivity reemplaza los campos editables y el estado de completado.
func (s *Store) UpdateActivity(ctx context.Context, a *entity.Activity) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE activities SET collaborator_id = $2, day = $3, time = $4, end_time = $5,
			description = $6, completed = $7, completed_at = $8, updated_at = $9
		WHERE id = $1`,
		a.ID, a.CollaboratorID, a.Day, a.Time, a.EndTime, a.Description,
		a.Completed, a.CompletedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteActivity elimina solo la actividad indicada.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

// ListActivities actividades de los colaboradores indicados (nil = todas).
func (s *Store) ListActivities(ctx context.Context, collaboratorIDs []string) ([]*entity.Activity, error) {
	return listActivities(ctx, s.pool, collaboratorIDs)
}

func listActivities(ctx context.Context, q querier, collaboratorIDs []string) ([]*entity.Activity, error) {
	rows, err := q.Query(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE $1::text[] IS NULL OR collaborator_id = ANY($1)
		ORDER BY seq`, collaboratorIDs)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var out []*entity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
