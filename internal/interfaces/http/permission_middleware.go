package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velaparedes/backrrhh-api/internal/application/dto"
)

// RequirePermission devuelve un middleware Fiber que exige que el token de la
// sesión contenga el permiso canónico "action:resource". Debe usarse DESPUÉS
// de AuthMiddleware (lee los permisos de c.Locals).
//
// Comportamiento:
//   - 401 si no hay sesión cargada (AuthMiddleware ausente o no ejecutado).
//   - 403 si el set de permisos del token no contiene el requerido. Un set
//     vacío deniega siempre: sin permiso = sin acceso.
//
// El chequeo es puro (membresía en el slice del token), sin I/O: los permisos
// vigentes son los materializados en el login hasta que el token expire.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada",
			})
		}
		for _, p := range GetPermissions(c) {
			if p == permission {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "no cuenta con el permiso '" + permission + "'",
		})
	}
}
