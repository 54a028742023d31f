package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/velaparedes/backrrhh-api/internal/application/auth"
	"github.com/velaparedes/backrrhh-api/internal/application/authz"
	"github.com/velaparedes/backrrhh-api/internal/application/usecase"
	infrapdf "github.com/velaparedes/backrrhh-api/internal/infrastructure/pdf"
	"github.com/velaparedes/backrrhh-api/internal/infrastructure/postgres"
	httpRouter "github.com/velaparedes/backrrhh-api/internal/interfaces/http"
	"github.com/velaparedes/backrrhh-api/pkg/config"
	"github.com/velaparedes/backrrhh-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin configuración válida (ej. JWT_SECRET ausente) no se arranca.
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("system", cfg.Auth.SystemID).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	rbacRepo := postgres.NewRBACRepository(pool)
	jobRepo := postgres.NewJobPostingRepository(pool)
	docRepo := postgres.NewJobDocumentRepository(pool)

	resolver := authz.NewResolver(rbacRepo)
	authUC := appauth.NewUseCase(userRepo, resolver, cfg.Auth.SystemID, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sheetGenerator := infrapdf.NewJobSheetGenerator()
	jobUC := usecase.NewJobUseCase(jobRepo)
	sheetUC := usecase.NewSheetUseCase(jobRepo, docRepo, sheetGenerator)
	documentUC := usecase.NewDocumentUseCase(docRepo, jobRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BackRRHH API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		JobUC:      jobUC,
		SheetUC:    sheetUC,
		DocumentUC: documentUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
