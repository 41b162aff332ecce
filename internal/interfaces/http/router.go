package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dguzman/staffing-api/internal/application/auth"
	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/application/usecase"
	"github.com/dguzman/staffing-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	RequestUC    *staffing.RequestUseCase
	AssignmentUC *staffing.AssignmentUseCase
	ReportUC     *staffing.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido; administración solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", staffOnly, userHandler.List)
	users.Get("/:id", staffOnly, userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.Update)

	// Companies (protegido; escritura solo admin/manager)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", staffOnly, companyHandler.Create)
	companies.Put("/:id", staffOnly, companyHandler.Update)

	// Daily requests (protegido; escritura solo admin/manager)
	requests := protected.Group("/daily-requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Assignments: subrecurso con rutas fijas; va antes de /:id para que
	// "assignments" no se capture como parámetro.
	requests.Post("/assignments", staffOnly, assignmentHandler.Create)
	requests.Put("/assignments/:id/status", staffOnly, assignmentHandler.UpdateStatus)
	requests.Delete("/assignments/:id", staffOnly, assignmentHandler.Delete)

	// Reports y stats
	requests.Get("/reports/payments", staffOnly, reportHandler.Payments)
	requests.Get("/reports/payments/pdf", staffOnly, reportHandler.PaymentsPDF)
	requests.Get("/reports/attendance", staffOnly, reportHandler.Attendance)
	requests.Get("/stats/dashboard", reportHandler.DashboardStats)
	requests.Get("/stats/attendance", reportHandler.AttendanceStats)

	// CRUD de solicitudes
	requests.Get("/", requestHandler.List)
	requests.Post("/", staffOnly, requestHandler.Create)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id/status", staffOnly, requestHandler.UpdateStatus)
	requests.Delete("/:id", staffOnly, requestHandler.Delete)
}
