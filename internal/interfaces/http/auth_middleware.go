package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/pkg/jwt"
)

// Locals keys para los claims de sesión en Fiber.
const (
	LocalUserID      = "user_id"
	LocalUserName    = "user_name"
	LocalDNI         = "dni"
	LocalRoleID      = "role_id"
	LocalPermissions = "permissions"
)

// AuthMiddleware valida el Bearer Token JWT y carga la identidad resuelta
// (usuario, DNI, rol y set de permisos) a c.Locals. Cualquier fallo del token
// (malformado, firma inválida, expirado) responde 401: la sesión se considera
// inexistente y el cliente debe volver a loguearse.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Verify(jwtSecret, tokenString)
		if err != nil {
			code := "INVALID_TOKEN"
			if errors.Is(err, jwt.ErrExpired) {
				code = "TOKEN_EXPIRED"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalDNI, claims.DNI)
		c.Locals(LocalRoleID, claims.RoleID)
		c.Locals(LocalPermissions, claims.Permissions)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUserName devuelve el nombre completo del usuario autenticado.
func GetUserName(c *fiber.Ctx) string {
	return localString(c, LocalUserName)
}

// GetDNI devuelve el DNI del usuario autenticado.
func GetDNI(c *fiber.Ctx) string {
	return localString(c, LocalDNI)
}

// GetRoleID devuelve el rol resuelto para el sistema de este despliegue.
func GetRoleID(c *fiber.Ctx) string {
	return localString(c, LocalRoleID)
}

// GetPermissions devuelve el set de permisos "action:resource" del token.
func GetPermissions(c *fiber.Ctx) []string {
	v := c.Locals(LocalPermissions)
	if v == nil {
		return nil
	}
	perms, _ := v.([]string)
	return perms
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
