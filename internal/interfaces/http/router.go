package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velaparedes/backrrhh-api/internal/application/auth"
	"github.com/velaparedes/backrrhh-api/internal/application/usecase"
)

// Permisos requeridos por las rutas del módulo RRHH, en forma canónica
// "action:resource". Deben existir en la tabla permissions del sistema
// "backrrhh" para que algún rol pueda ejercerlos.
const (
	PermCreateConvocatorias = "create:convocatorias"
	PermReadConvocatorias   = "read:convocatorias"
	PermUpdateConvocatorias = "update:convocatorias"
	PermDeleteConvocatorias = "delete:convocatorias"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	JobUC      *usecase.JobUseCase
	SheetUC    *usecase.SheetUseCase
	DocumentUC *usecase.DocumentUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Toda ruta de negocio pasa por
// AuthMiddleware (token válido) y RequirePermission (permiso del token)
// antes de ejecutar cualquier handler.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Convocatorias
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC, deps.SheetUC)
	jobs.Post("/", RequirePermission(PermCreateConvocatorias), jobHandler.Create)
	jobs.Get("/", RequirePermission(PermReadConvocatorias), jobHandler.List)
	jobs.Get("/:id", RequirePermission(PermReadConvocatorias), jobHandler.GetByID)
	jobs.Put("/:id", RequirePermission(PermUpdateConvocatorias), jobHandler.Update)
	jobs.Delete("/:id", RequirePermission(PermDeleteConvocatorias), jobHandler.Delete)
	jobs.Get("/:id/pdf", RequirePermission(PermReadConvocatorias), jobHandler.Sheet)

	// Documentos de convocatoria
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	jobs.Post("/:id/documents", RequirePermission(PermUpdateConvocatorias), documentHandler.Register)
	jobs.Get("/:id/documents", RequirePermission(PermReadConvocatorias), documentHandler.List)

	documents := protected.Group("/documents")
	documents.Put("/:docId/visibility", RequirePermission(PermUpdateConvocatorias), documentHandler.SetVisibility)
	documents.Delete("/:docId", RequirePermission(PermUpdateConvocatorias), documentHandler.Delete)
}
