package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// UpsertBranchConfig crea o reemplaza el registro de sucursal del tenant.
func (s *Store) UpsertBranchConfig(ctx context.Context, cfg entity.BranchConfig) error {
	return upsertBranch(ctx, s.pool, cfg)
}

func upsertBranch(ctx context.Context, q querier, cfg entity.BranchConfig) error {
	_, err := q.Exec(ctx, `
		INSERT INTO branch_configs (manager_id, name, ceco, region, territory)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (manager_id) DO UPDATE
		SET name = EXCLUDED.name, ceco = EXCLUDED.ceco, region = EXCLUDED.region, territory = EXCLUDED.territory`,
		cfg.ManagerID, cfg.Name, cfg.CECO, cfg.Region, cfg.Territory)
	if err != nil {
		return fmt.Errorf("upsert branch config: %w", err)
	}
	return nil
}

// UpsertShiftConfig crea o reemplaza los horarios del tenant.
func (s *Store) UpsertShiftConfig(ctx context.Context, cfg entity.ShiftConfig) error {
	return upsertShift(ctx, s.pool, cfg)
}

func upsertShift(ctx context.Context, q querier, cfg entity.ShiftConfig) error {
	_, err := q.Exec(ctx, `
		INSERT INTO shift_configs (manager_id, matutino_start, matutino_end, matutino_lunch,
			vespertino_start, vespertino_end, vespertino_lunch)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (manager_id) DO UPDATE
		SET matutino_start = EXCLUDED.matutino_start, matutino_end = EXCLUDED.matutino_end,
			matutino_lunch = EXCLUDED.matutino_lunch, vespertino_start = EXCLUDED.vespertino_start,
			vespertino_end = EXCLUDED.vespertino_end, vespertino_lunch = EXCLUDED.vespertino_lunch`,
		cfg.ManagerID,
		cfg.Matutino.Start, cfg.Matutino.End, nonNil(cfg.Matutino.Lunch),
		cfg.Vespertino.Start, cfg.Vespertino.End, nonNil(cfg.Vespertino.Lunch))
	if err != nil {
		return fmt.Errorf("upsert shift config: %w", err)
	}
	return nil
}

// AddActivityDefinition inserta la entrada si (tenant, nombre) no existe.
func (s *Store) AddActivityDefinition(ctx context.Context, def entity.ActivityDefinition) (bool, error) {
	return addDefinition(ctx, s.pool, def)
}

func addDefinition(ctx context.Context, q querier, def entity.ActivityDefinition) (bool, error) {
	tag, err := q.Exec(ctx, `
		INSERT INTO activity_definitions (id, manager_id, name) VALUES ($1, $2, $3)
		ON CONFLICT (manager_id, name) DO NOTHING`, def.ID, def.ManagerID, def.Name)
	if err != nil {
		return false, fmt.Errorf("insert activity definition: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveActivityDefinition borra la entrada (tenant, nombre).
func (s *Store) RemoveActivityDefinition(ctx context.Context, managerID, name string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM activity_definitions WHERE manager_id = $1 AND name = $2`, managerID, name)
	if err != nil {
		return fmt.Errorf("delete activity definition: %w", err)
	}
	return nil
}

// AddEmergencyContact agrega un contacto al tenant.
func (s *Store) AddEmergencyContact(ctx context.Context, c entity.EmergencyContact) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO emergency_contacts (id, manager_id, name, phone) VALUES ($1, $2, $3, $4)`,
		c.ID, c.ManagerID, c.Name, c.Phone)
	if err != nil {
		return fmt.Errorf("insert emergency contact: %w", err)
	}
	return nil
}

// RemoveEmergencyContact borra el contacto solo si pertenece al tenant.
func (s *Store) RemoveEmergencyContact(ctx context.Context, managerID, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM emergency_contacts WHERE id = $1 AND manager_id = $2`, id, managerID)
	if err != nil {
		return fmt.Errorf("delete emergency contact: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
