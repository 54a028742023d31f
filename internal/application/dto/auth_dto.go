package dto

// LoginRequest entrada para login: DNI + contraseña.
type LoginRequest struct {
	DNI      string `json:"dni" validate:"required,len=8,numeric"`
	Password string `json:"password" validate:"required"`
}

// SessionUser identidad resuelta que viaja en la respuesta de login. Los
// permisos son los tokens canónicos "action:resource" del rol en el sistema
// servido por este despliegue.
type SessionUser struct {
	ID          string   `json:"id"`
	DNI         string   `json:"dni"`
	Name        string   `json:"name"`
	Lastname    string   `json:"lastname"`
	Email       string   `json:"email"`
	RoleID      string   `json:"role_id"`
	RoleName    string   `json:"role_name"`
	Permissions []string `json:"permissions"`
}

// LoginResponse salida con token JWT firmado y la identidad resuelta.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
