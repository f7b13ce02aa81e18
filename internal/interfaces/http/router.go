package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ActivityUC      *usecase.ActivityUseCase
	CollaboratorUC  *usecase.CollaboratorUseCase
	ManagerUC       *usecase.ManagerUseCase
	TenantConfigUC  *usecase.TenantConfigUseCase
	DashboardUC     *usecase.DashboardUseCase
	ClockUC         *usecase.ClockUseCase
	StatsUC         *usecase.StatsUseCase
	ReportUC        *usecase.ReportUseCase
	JWTSecret       string
	LoginRatePerMin int // 0 = sin límite
}

var (
	roleAdmin        = string(entity.RoleAdmin)
	roleManager      = string(entity.RoleManager)
	roleCollaborator = string(entity.RoleCollaborator)
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret, deps.AuthUC)

	// Auth: login público; el resto accesible aun con el primer acceso pendiente.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.LoginRatePerMin > 0 {
		authGroup.Post("/login", limiter.New(limiter.Config{
			Max:        deps.LoginRatePerMin,
			Expiration: time.Minute,
		}), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/change-password", authMW, authHandler.ChangePassword)
	authGroup.Post("/logout", authMW, authHandler.Logout)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Aplicación: sesión válida y contraseña ya cambiada.
	protected := api.Group("/", authMW, FirstLoginGate())
	staff := RequireRole(roleAdmin, roleManager)

	dashboard := NewDashboardHandler(deps.DashboardUC, deps.ClockUC)
	protected.Get("/clock", dashboard.Clock)
	protected.Put("/clock", staff, dashboard.Travel)
	protected.Get("/schedule/slots", dashboard.Slots)
	protected.Get("/board", staff, dashboard.Board)
	protected.Get("/agenda", RequireRole(roleCollaborator), dashboard.Agenda)
	protected.Get("/team", RequireRole(roleCollaborator), dashboard.Team)

	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.List)
	activities.Post("/", staff, activityHandler.Create)
	activities.Put("/:id", staff, activityHandler.Update)
	activities.Patch("/:id/completion", activityHandler.SetCompletion)
	activities.Delete("/:id", staff, activityHandler.Delete)

	collaborators := protected.Group("/collaborators", staff)
	collaboratorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Post("/", collaboratorHandler.Create)
	collaborators.Post("/import", collaboratorHandler.Import)
	collaborators.Put("/:id", collaboratorHandler.Update)
	collaborators.Delete("/:id", collaboratorHandler.Delete)

	managers := protected.Group("/managers", RequireRole(roleAdmin))
	managerHandler := NewManagerHandler(deps.ManagerUC)
	managers.Get("/", managerHandler.List)
	managers.Post("/", managerHandler.Create)
	managers.Put("/:id", managerHandler.Update)
	managers.Delete("/:id", managerHandler.Delete)

	branch := protected.Group("/branch")
	configHandler := NewConfigHandler(deps.TenantConfigUC)
	branch.Get("/", configHandler.BranchInfo)
	branch.Put("/config", staff, configHandler.UpdateBranch)
	branch.Put("/shifts", staff, configHandler.UpdateShifts)
	branch.Post("/activity-types", staff, configHandler.AddActivityType)
	branch.Delete("/activity-types/:name", staff, configHandler.RemoveActivityType)
	branch.Post("/contacts", staff, configHandler.AddContact)
	branch.Delete("/contacts/:id", staff, configHandler.RemoveContact)

	reportHandler := NewReportHandler(deps.StatsUC, deps.ReportUC)
	protected.Get("/stats", staff, reportHandler.Stats)
	protected.Get("/stats/export", staff, reportHandler.ExportStats)
	protected.Get("/reports/daily-schedule", staff, reportHandler.DailySchedule)
}
