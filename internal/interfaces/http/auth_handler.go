package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/velaparedes/backrrhh-api/internal/application/auth"
	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/domain"
)

// AuthHandler maneja el login (DNI + contraseña → token de sesión).
type AuthHandler struct {
	uc       *auth.UseCase
	validate *validator.Validate
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validator.New()}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "dni, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
//
// Los tres motivos de rechazo de credenciales (DNI inexistente, cuenta
// inactiva, contraseña incorrecta) responden el MISMO cuerpo 401 para no
// permitir enumerar cuentas. La falta de rol en el módulo responde 403 con
// su propio código: en ese punto la identidad ya está probada.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dni (8 dígitos) y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrInactiveUser),
			errors.Is(err, domain.ErrBadCredentials),
			errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrNotAssigned), errors.Is(err, domain.ErrSystemInactive):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_ACCESS", Message: "sin acceso a este módulo"})
		default:
			// Fallo de infraestructura: reintentable, no se disfraza de 401.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "no se pudo procesar el login, intente más tarde"})
		}
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":          GetUserID(c),
		"name":        GetUserName(c),
		"dni":         GetDNI(c),
		"role_id":     GetRoleID(c),
		"permissions": GetPermissions(c),
	})
}
