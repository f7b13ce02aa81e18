package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

const principalColumns = `id, role, name, employee_number, password_hash, is_first_login,
	role_title, shift, avatar_initials, manager_id, created_at, updated_at`

func scanPrincipal(row pgx.Row) (*entity.Principal, error) {
	var (
		p                         entity.Principal
		roleTitle, shift, initial *string
		managerID                 *string
	)
	err := row.Scan(&p.ID, &p.Role, &p.Name, &p.EmployeeNumber, &p.PasswordHash, &p.IsFirstLogin,
		&roleTitle, &shift, &initial, &managerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Role == entity.RoleCollaborator {
		p.Profile = &entity.CollaboratorProfile{
			RoleTitle:      deref(roleTitle),
			Shift:          entity.Shift(deref(shift)),
			AvatarInitials: deref(initial),
			ManagerID:      deref(managerID),
		}
	}
	return &p, nil
}

func collectPrincipals(rows pgx.Rows) ([]*entity.Principal, error) {
	defer rows.Close()
	var out []*entity.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// profileArgs columnas del perfil; NULL para roles sin perfil.
func profileArgs(p *entity.Principal) (roleTitle, shift, initials, managerID *string) {
	if p.Profile == nil {
		return nil, nil, nil, nil
	}
	s := string(p.Profile.Shift)
	return &p.Profile.RoleTitle, &s, &p.Profile.AvatarInitials, &p.Profile.ManagerID
}

func insertPrincipal(ctx context.Context, q querier, p *entity.Principal) error {
	roleTitle, shift, initials, managerID := profileArgs(p)
	_, err := q.Exec(ctx, `
		INSERT INTO users (id, role, name, employee_number, password_hash, is_first_login,
			role_title, shift, avatar_initials, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Role, p.Name, p.EmployeeNumber, p.PasswordHash, p.IsFirstLogin,
		roleTitle, shift, initials, managerID, p.CreatedAt, p.UpdatedAt,
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, "users_employee_number_key"):
		return domain.ErrEmployeeNumberExists
	case isUniqueViolation(err, ""):
		return fmt.Errorf("insert principal %s: %w", p.ID, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("insert principal %s: gerente inexistente: %w", p.ID, domain.ErrNotFound)
	default:
		return fmt.Errorf("insert principal: %w", err)
	}
}

// AddPrincipal inserta un principal de cualquier rol (usado por la carga de demo).
func (s *Store) AddPrincipal(ctx context.Context, p *entity.Principal) error {
	return insertPrincipal(ctx, s.pool, p)
}

// FindByEmployeeNumber cuentas con ese login.
func (s *Store) FindByEmployeeNumber(ctx context.Context, employeeNumber string) ([]*entity.Principal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+principalColumns+` FROM users WHERE employee_number = $1 ORDER BY seq`, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("find by employee number: %w", err)
	}
	return collectPrincipals(rows)
}

// GetPrincipal obtiene un principal por ID; (nil, nil) si no existe.
func (s *Store) GetPrincipal(ctx context.Context, id string) (*entity.Principal, error) {
	p, err := scanPrincipal(s.pool.QueryRow(ctx, `SELECT `+principalColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get principal: %w", err)
	}
	return p, nil
}

// UpdateCredential guarda el hash y limpia is_first_login.
func (s *Store) UpdateCredential(ctx context.Context, id, passwordHash string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, is_first_login = FALSE, updated_at = now()
		WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListManagers todos los gerentes en orden de alta.
func (s *Store) ListManagers(ctx context.Context) ([]*entity.Principal, error) {
	return listByRole(ctx, s.pool, entity.RoleManager, nil)
}

// listByRole principales del rol; managerIDs filtra por tenant (nil = todos).
func listByRole(ctx context.Context, q querier, role entity.Role, managerIDs []string) ([]*entity.Principal, error) {
	tenantCol := "manager_id"
	if role == entity.RoleManager {
		tenantCol = "id"
	}
	rows, err := q.Query(ctx, `
		SELECT `+principalColumns+` FROM users
		WHERE role = $1 AND ($2::text[] IS NULL OR `+tenantCol+` = ANY($2))
		ORDER BY seq`, role, managerIDs)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", role, err)
	}
	return collectPrincipals(rows)
}

// CreateManager inserta el gerente y la configuración inicial del tenant en una transacción.
func (s *Store) CreateManager(ctx context.Context, manager *entity.Principal, seed entity.TenantSeed) error {
	return s.write(ctx, func(q querier) error {
		if err := insertPrincipal(ctx, q, manager); err != nil {
			return err
		}
		seed.Branch.ManagerID = manager.ID
		seed.Shift.ManagerID = manager.ID
		if err := upsertBranch(ctx, q, seed.Branch); err != nil {
			return err
		}
		if err := upsertShift(ctx, q, seed.Shift); err != nil {
			return err
		}
		for _, def := range seed.Catalog {
			def.ManagerID = manager.ID
			if _, err := addDefinition(ctx, q, def); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdatePrincipal reemplaza nombre, login y perfil; rol, hash y primer login no cambian.
func (s *Store) UpdatePrincipal(ctx context.Context, p *entity.Principal) error {
	roleTitle, shift, initials, managerID := profileArgs(p)
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET name = $2, employee_number = $3, role_title = $4, shift = $5,
			avatar_initials = $6, manager_id = $7, updated_at = $8
		WHERE id = $1`,
		p.ID, p.Name, p.EmployeeNumber, roleTitle, shift, initials, managerID, p.UpdatedAt)
	switch {
	case err == nil:
	case isUniqueViolation(err, "users_employee_number_key"):
		return domain.ErrEmployeeNumberExists
	case isForeignKeyViolation(err):
		return fmt.Errorf("update principal %s: gerente inexistente: %w", p.ID, domain.ErrNotFound)
	default:
		return fmt.Errorf("update principal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteManager borra el gerente; la configuración del tenant cae por ON DELETE CASCADE.
func (s *Store) DeleteManager(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role = $2`, id, entity.RoleManager)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete manager %s: tiene colaboradores: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete manager: %w", err)
	}
	return nil
}

// ListCollaborators colaboradores de los tenants indicados (nil = todos).
func (s *Store) ListCollaborators(ctx context.Context, managerIDs []string) ([]*entity.Principal, error) {
	return listByRole(ctx, s.pool, entity.RoleCollaborator, managerIDs)
}

// CreateCollaborator inserta un colaborador.
func (s *Store) CreateCollaborator(ctx context.Context, c *entity.Principal) error {
	return insertPrincipal(ctx, s.pool, c)
}

// DeleteCollaborator borra el colaborador; sus actividades caen por ON DELETE CASCADE.
func (s *Store) DeleteCollaborator(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role = $2`, id, entity.RoleCollaborator)
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
