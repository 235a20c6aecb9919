package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Capacitaciones-api/internal/application/auth"
	"github.com/jhoicas/Capacitaciones-api/internal/application/usecase"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC      *usecase.StoreUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	CourseUC     *usecase.CourseUseCase
	AssignmentUC *usecase.AssignmentUseCase
	ReportUC     *usecase.ReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Stores (protegido; mutaciones solo admin)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Put("/:id", adminOnly, storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Courses (protegido; mutaciones solo admin, disparan el motor de asignación)
	courses := protected.Group("/courses")
	courseHandler := NewCourseHandler(deps.CourseUC)
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.GetByID)
	courses.Post("/", adminOnly, courseHandler.Create)
	courses.Put("/:id", adminOnly, courseHandler.Update)
	courses.Delete("/:id", adminOnly, courseHandler.Delete)

	// Assignments (protegido)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Post("/:id/complete", assignmentHandler.Complete)
	assignments.Get("/:id/certificate", assignmentHandler.Certificate)
	assignments.Delete("/:id", adminOnly, assignmentHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/functions", reportHandler.FunctionProgress)
	reports.Get("/areas", reportHandler.AreaProgress)
	reports.Get("/employees/:id", reportHandler.EmployeeProgress)
}
