package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
)

var _ repository.RBACRepository = (*RBACRepo)(nil)

// RBACRepo lecturas sobre el grafo de sistemas, roles y permisos.
type RBACRepo struct {
	pool *pgxpool.Pool
}

// NewRBACRepository construye el adaptador de lectura RBAC.
func NewRBACRepository(pool *pgxpool.Pool) *RBACRepo {
	return &RBACRepo{pool: pool}
}

// GetSystemByID obtiene un sistema por ID. Devuelve (nil, nil) si no existe.
func (r *RBACRepo) GetSystemByID(ctx context.Context, systemID string) (*entity.System, error) {
	query := `SELECT id, name, COALESCE(description, ''), is_active FROM systems WHERE id = $1`
	var s entity.System
	err := r.pool.QueryRow(ctx, query, systemID).Scan(&s.ID, &s.Name, &s.Description, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system: %w", err)
	}
	return &s, nil
}

// ListAssignmentsByUser devuelve las asignaciones usuario→(sistema, rol)
// ordenadas por assigned_at y role_id para que la selección de rol sea
// estable entre llamadas.
func (r *RBACRepo) ListAssignmentsByUser(ctx context.Context, userID string) ([]entity.UserSystemRole, error) {
	query := `
		SELECT user_id, system_id, role_id, assigned_at
		FROM user_system_roles
		WHERE user_id = $1
		ORDER BY assigned_at ASC, role_id ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []entity.UserSystemRole
	for rows.Next() {
		var a entity.UserSystemRole
		if err := rows.Scan(&a.UserID, &a.SystemID, &a.RoleID, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListPermissionsByRole devuelve los permisos alcanzables desde el rol a
// través de la matriz role_permissions. No deduplica; eso es trabajo del
// resolvedor.
func (r *RBACRepo) ListPermissionsByRole(ctx context.Context, roleID string) ([]entity.Permission, error) {
	query := `
		SELECT p.id, p.system_id, p.resource, p.action, COALESCE(p.description, '')
		FROM role_permissions rp
		INNER JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1`
	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()
	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.SystemID, &p.Resource, &p.Action, &p.Description); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetRoleByID obtiene un rol por ID. Devuelve (nil, nil) si no existe.
func (r *RBACRepo) GetRoleByID(ctx context.Context, roleID string) (*entity.Role, error) {
	query := `SELECT id, system_id, name, COALESCE(description, '') FROM roles WHERE id = $1`
	var role entity.Role
	err := r.pool.QueryRow(ctx, query, roleID).Scan(&role.ID, &role.SystemID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
