package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// FetchTenantData lee gerentes, colaboradores, actividades y configuración de los tenants
// (nil = todos) dentro de una transacción REPEATABLE READ de solo lectura.
func (s *Store) FetchTenantData(ctx context.Context, managerIDs []string) (*entity.TenantSnapshot, error) {
	snap := &entity.TenantSnapshot{}
	err := inTx(ctx, s.pool, snapshotTx, func(q querier) error {
		var err error
		if snap.Managers, err = listByRole(ctx, q, entity.RoleManager, managerIDs); err != nil {
			return err
		}
		if snap.Collaborators, err = listByRole(ctx, q, entity.RoleCollaborator, managerIDs); err != nil {
			return err
		}
		ids := make([]string, 0, len(snap.Collaborators))
		for _, c := range snap.Collaborators {
			ids = append(ids, c.ID)
		}
		if snap.Activities, err = listActivities(ctx, q, ids); err != nil {
			return err
		}
		if snap.ActivityDefinitions, err = queryTenant(ctx, q,
			`SELECT id, manager_id, name FROM activity_definitions`, "seq", managerIDs,
			func(row pgx.Row) (d entity.ActivityDefinition, err error) {
				err = row.Scan(&d.ID, &d.ManagerID, &d.Name)
				return d, err
			}); err != nil {
			return err
		}
		if snap.BranchConfigs, err = queryTenant(ctx, q,
			`SELECT manager_id, name, ceco, region, territory FROM branch_configs`, "manager_id", managerIDs,
			func(row pgx.Row) (b entity.BranchConfig, err error) {
				err = row.Scan(&b.ManagerID, &b.Name, &b.CECO, &b.Region, &b.Territory)
				return b, err
			}); err != nil {
			return err
		}
		if snap.ShiftConfigs, err = queryTenant(ctx, q, `
			SELECT manager_id, matutino_start, matutino_end, matutino_lunch,
				vespertino_start, vespertino_end, vespertino_lunch
			FROM shift_configs`, "manager_id", managerIDs,
			func(row pgx.Row) (c entity.ShiftConfig, err error) {
				err = row.Scan(&c.ManagerID,
					&c.Matutino.Start, &c.Matutino.End, &c.Matutino.Lunch,
					&c.Vespertino.Start, &c.Vespertino.End, &c.Vespertino.Lunch)
				return c, err
			}); err != nil {
			return err
		}
		snap.EmergencyContacts, err = queryTenant(ctx, q,
			`SELECT id, manager_id, name, phone FROM emergency_contacts`, "seq", managerIDs,
			func(row pgx.Row) (c entity.EmergencyContact, err error) {
				err = row.Scan(&c.ID, &c.ManagerID, &c.Name, &c.Phone)
				return c, err
			})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch tenant data: %w", err)
	}
	return snap, nil
}

// queryTenant ejecuta base filtrando por manager_id (nil = todos) y escanea cada fila.
func queryTenant[T any](ctx context.Context, q querier, base, orderBy string, managerIDs []string,
	scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, base+` WHERE $1::text[] IS NULL OR manager_id = ANY($1) ORDER BY `+orderBy, managerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
