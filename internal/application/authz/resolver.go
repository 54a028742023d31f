// Package authz materializa el acceso de un usuario autenticado a un módulo:
// decide la pertenencia (¿tiene algún rol en el sistema?) y aplana la matriz
// rol→permisos en tokens canónicos "action:resource".
package authz

import (
	"context"
	"sort"

	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
)

// ModuleAccess es el resultado de resolver (usuario, sistema): el rol
// seleccionado y su set de permisos deduplicado y ordenado. Un rol sin
// permisos es válido y produce un set vacío; los chequeos posteriores
// deniegan por defecto.
type ModuleAccess struct {
	SystemID    string
	RoleID      string
	RoleName    string
	Permissions []string
}

// Resolver resuelve pertenencia a módulo y permisos sobre el grafo RBAC.
type Resolver struct {
	repo repository.RBACRepository
}

// NewResolver construye el resolvedor.
func NewResolver(repo repository.RBACRepository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveForSystem determina si userID tiene acceso al sistema systemID y, si
// lo tiene, materializa su set de permisos.
//
//   - Sistema inexistente o desactivado → domain.ErrSystemInactive: un
//     sistema dado de baja no admite nuevas autorizaciones aunque las filas
//     de roles sigan en la base.
//   - Sin asignación en el sistema → domain.ErrNotAssigned: credencial
//     válida sin rol en el módulo se rechaza, no se muestra vacío.
//   - Varias asignaciones: gana la más antigua por assigned_at, con role_id
//     ascendente como desempate, de forma determinista entre llamadas.
//
// Los errores del repositorio se propagan sin transformar.
func (r *Resolver) ResolveForSystem(ctx context.Context, userID, systemID string) (*ModuleAccess, error) {
	system, err := r.repo.GetSystemByID(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if system == nil || !system.IsActive {
		return nil, domain.ErrSystemInactive
	}

	assignments, err := r.repo.ListAssignmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	selected := selectAssignment(assignments, systemID)
	if selected == nil {
		return nil, domain.ErrNotAssigned
	}

	perms, err := r.repo.ListPermissionsByRole(ctx, selected.RoleID)
	if err != nil {
		return nil, err
	}

	role, err := r.repo.GetRoleByID(ctx, selected.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}

	return &ModuleAccess{
		SystemID:    systemID,
		RoleID:      selected.RoleID,
		RoleName:    roleName,
		Permissions: flatten(perms),
	}, nil
}

// selectAssignment filtra por sistema y aplica el desempate determinista.
// No asume que el repositorio devuelva las filas ordenadas.
func selectAssignment(assignments []entity.UserSystemRole, systemID string) *entity.UserSystemRole {
	var matches []entity.UserSystemRole
	for _, a := range assignments {
		if a.SystemID == systemID {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].AssignedAt.Equal(matches[j].AssignedAt) {
			return matches[i].AssignedAt.Before(matches[j].AssignedAt)
		}
		return matches[i].RoleID < matches[j].RoleID
	})
	return &matches[0]
}

// flatten convierte los permisos en tokens "action:resource" deduplicados y
// ordenados: la igualdad del set no depende del orden de inserción en la
// matriz.
func flatten(perms []entity.Permission) []string {
	seen := make(map[string]struct{}, len(perms))
	tokens := make([]string, 0, len(perms))
	for _, p := range perms {
		tok := p.Token()
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}
