package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/castilloConsultoresuy/turnolistov2/internal/api/http/handlers"
	"github.com/castilloConsultoresuy/turnolistov2/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Queue           *handlers.QueueHandler
	Admin           *handlers.AdminHandler
	AdminMiddleware *auth.AdminMiddleware

	// EnforceAdmin gates the mutating queue routes behind the admin session.
	// Off by default: the original frontend calls them without credentials.
	EnforceAdmin bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	queue := api.Group("/queue")
	queue.Get("/state", cfg.Queue.State)
	queue.Post("/ticket", cfg.Queue.CreateTicket)
	queue.Get("/history", cfg.Queue.History)

	mutating := queue.Group("")
	if cfg.EnforceAdmin {
		mutating = queue.Group("", cfg.AdminMiddleware.Handle)
	}
	mutating.Post("/next", cfg.Queue.CallNext)
	mutating.Post("/reset", cfg.Queue.Reset)

	admin := api.Group("/admin")
	admin.Post("/login", cfg.Admin.Login)
	admin.Get("/session", cfg.AdminMiddleware.Handle, cfg.Admin.Session)
}
