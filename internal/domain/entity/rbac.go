package entity

import "time"

// System es un módulo lógico de la plataforma (ej. "backrrhh", "hospital").
// Su ID es una clave estable; desactivarlo impide nuevas autorizaciones sin
// borrar el historial de roles.
type System struct {
	ID          string // ej. "backrrhh"
	Name        string
	Description string
	IsActive    bool
}

// Permission es una capacidad atómica dentro de un sistema, expresada como
// par (resource, action). Su forma canónica en sesión es "action:resource".
type Permission struct {
	ID          string
	SystemID    string
	Resource    string // ej. "convocatorias"
	Action      string // create, read, update, delete
	Description string
}

// Token devuelve la forma canónica "action:resource" usada en los claims de
// sesión y en los chequeos de ruta.
func (p Permission) Token() string {
	return p.Action + ":" + p.Resource
}

// Role agrupa permisos dentro de un único sistema.
type Role struct {
	ID          string
	SystemID    string
	Name        string // ej. "Especialista RRHH"
	Description string
}

// RolePermission es la arista rol ↔ permiso. Ambos lados deben pertenecer al
// mismo sistema; esa validación la aplica quien escribe la matriz, no este
// servicio (que solo la lee).
type RolePermission struct {
	RoleID       string
	PermissionID string
}

// UserSystemRole asigna a un usuario un rol dentro de un sistema. La clave
// (user, system, role) es única; el resolvedor asume un solo rol por sistema
// y desempata por AssignedAt ascendente si existieran varios.
type UserSystemRole struct {
	UserID     string
	SystemID   string
	RoleID     string
	AssignedAt time.Time
}
