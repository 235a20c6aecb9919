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
	"github.com/jhoicas/Capacitaciones-api/internal/application/auth"
	"github.com/jhoicas/Capacitaciones-api/internal/application/autoassign"
	"github.com/jhoicas/Capacitaciones-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Capacitaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Capacitaciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Capacitaciones-api/internal/interfaces/http"
	"github.com/jhoicas/Capacitaciones-api/pkg/config"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de asignación automática: cada entrada corre en su propia transacción.
	engine := autoassign.NewReconcileUseCase(txRunner, log.Component("autoassign"))

	storeUC := usecase.NewStoreUseCase(storeRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, storeRepo, engine, log)
	courseUC := usecase.NewCourseUseCase(courseRepo, storeRepo, engine, log)

	// PDF: certificado de conclusión de curso
	pdfGenerator := infrapdf.NewMarotoCertificateGenerator()
	assignmentUC := usecase.NewAssignmentUseCase(
		assignmentRepo, employeeRepo, courseRepo, storeRepo, pdfGenerator,
	)
	reportUC := usecase.NewReportUseCase(reportRepo, employeeRepo)
	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Capacitaciones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:      storeUC,
		EmployeeUC:   employeeUC,
		CourseUC:     courseUC,
		AssignmentUC: assignmentUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
