package repository

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// RBACRepository expone las lecturas sobre el grafo de roles y permisos.
// Este servicio nunca escribe la matriz; el aprovisionamiento es externo.
type RBACRepository interface {
	// GetSystemByID devuelve (nil, nil) si el sistema no existe.
	GetSystemByID(ctx context.Context, systemID string) (*entity.System, error)
	// ListAssignmentsByUser devuelve todas las asignaciones del usuario en
	// todos los sistemas, ordenadas por assigned_at y role_id ascendentes.
	ListAssignmentsByUser(ctx context.Context, userID string) ([]entity.UserSystemRole, error)
	// ListPermissionsByRole devuelve los permisos alcanzables desde el rol a
	// través de role_permissions. Puede contener duplicados semánticos.
	ListPermissionsByRole(ctx context.Context, roleID string) ([]entity.Permission, error)
	// GetRoleByID devuelve (nil, nil) si el rol no existe.
	GetRoleByID(ctx context.Context, roleID string) (*entity.Role, error)
}
