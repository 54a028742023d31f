package entity

import "time"

// User representa un empleado/usuario que puede autenticarse con su DNI.
// El DNI es único e inmutable; IsActive en false bloquea el login aunque la
// contraseña sea correcta.
type User struct {
	ID           string
	DNI          string // 8 dígitos, único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Lastname     string
	Email        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve el nombre completo para mostrar en sesión.
func (u *User) DisplayName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}
