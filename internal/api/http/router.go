package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/api/http/handlers"
	"github.com/spec-kit/estate-cms/internal/auth"
	"github.com/spec-kit/estate-cms/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Projects       *handlers.ProjectsHandler
	Blogs          *handlers.BlogsHandler
	Leads          *handlers.LeadsHandler
	Testimonials   *handlers.TestimonialsHandler
	Amenities      *handlers.AmenitiesHandler
	Users          *handlers.UsersHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.Middleware
	LeadLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Required, cfg.Auth.Me)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Required, cfg.Auth.ChangePassword)

	// Public catalogue. Optional auth lets editors see drafts and pending
	// moderation entries through the same routes.
	api := app.Group("/api")
	api.Get("/projects", cfg.Projects.List)
	api.Get("/projects/:slug", cfg.Projects.Get)
	api.Get("/blogs", cfg.AuthMiddleware.Optional, cfg.Blogs.List)
	api.Get("/blogs/:slug", cfg.AuthMiddleware.Optional, cfg.Blogs.Get)
	api.Get("/testimonials", cfg.AuthMiddleware.Optional, cfg.Testimonials.List)
	api.Get("/amenities", cfg.Amenities.List)
	api.Post("/leads", cfg.LeadLimiter, cfg.Leads.Create)
	api.Post("/testimonials", cfg.LeadLimiter, cfg.Testimonials.Create)

	admin := app.Group("/admin", cfg.AuthMiddleware.Required)

	editor := admin.Group("", auth.RequireRole(domain.RoleEditor))
	editor.Post("/projects", cfg.Projects.Create)
	editor.Put("/projects/:id", cfg.Projects.Update)
	editor.Post("/blogs", cfg.Blogs.Create)
	editor.Put("/blogs/:id", cfg.Blogs.Update)
	editor.Get("/leads", cfg.Leads.List)
	editor.Get("/leads/:id", cfg.Leads.Get)
	editor.Patch("/leads/:id/status", cfg.Leads.UpdateStatus)
	editor.Patch("/testimonials/:id/approve", cfg.Testimonials.Approve)
	editor.Post("/amenities", cfg.Amenities.Create)
	editor.Put("/amenities/:id", cfg.Amenities.Update)
	editor.Delete("/amenities/:id", cfg.Amenities.Delete)

	adminOnly := admin.Group("", auth.RequireRole(domain.RoleAdmin))
	adminOnly.Delete("/projects/:id", cfg.Projects.Delete)
	adminOnly.Delete("/blogs/:id", cfg.Blogs.Delete)
	adminOnly.Delete("/testimonials/:id", cfg.Testimonials.Delete)

	adminOnly.Get("/stats", cfg.Stats.Get)

	adminOnly.Get("/users", cfg.Users.List)
	adminOnly.Get("/users/:id", cfg.Users.Get)
	adminOnly.Post("/users", cfg.Users.Create)
	adminOnly.Put("/users/:id/role", cfg.Users.UpdateRole)
	adminOnly.Patch("/users/:id/active", cfg.Users.SetActive)
}
