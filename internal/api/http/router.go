package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/http/handlers"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Guard          *handlers.GuardHandler
	Vehicles       *handlers.VehiclesHandler
	Bookings       *handlers.BookingsHandler
	Favorites      *handlers.FavoritesHandler
	Profile        *handlers.ProfileHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuth())
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	// The guard must see both authenticated and anonymous callers, so the
	// middleware resolves the principal without enforcing it.
	app.Post("/guard/evaluate", cfg.AuthMiddleware.HandleOptional, cfg.Guard.Evaluate)

	app.Post("/chat/message", cfg.Chat.Message)

	vehicles := app.Group("/vehicles")
	vehicles.Get("/", cfg.Vehicles.List)
	vehicles.Post("/compare", cfg.Vehicles.Compare)
	vehicles.Get("/:id", cfg.Vehicles.Get)

	favorites := app.Group("/favorites", cfg.AuthMiddleware.Handle, auth.RequireAuth())
	favorites.Get("/", cfg.Favorites.List)
	favorites.Put("/:vehicleID", cfg.Favorites.Add)
	favorites.Delete("/:vehicleID", cfg.Favorites.Remove)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle, auth.RequireAuth())
	bookings.Post("/", cfg.Bookings.Create)
	bookings.Get("/", cfg.Bookings.ListMine)
	bookings.Post("/:id/cancel", cfg.Bookings.Cancel)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireAuth())
	profile.Get("/", cfg.Profile.Get)
	profile.Put("/", cfg.Profile.Update)

	settings := app.Group("/settings", cfg.AuthMiddleware.Handle, auth.RequireAuth())
	settings.Get("/", cfg.Profile.GetSettings)
	settings.Put("/", cfg.Profile.UpdateSettings)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Post("/vehicles", cfg.Vehicles.Create)
	admin.Put("/vehicles/:id", cfg.Vehicles.Update)
	admin.Patch("/vehicles/:id/availability", cfg.Vehicles.SetAvailability)
	admin.Get("/bookings", cfg.Bookings.ListAll)
	admin.Post("/bookings/:id/confirm", cfg.Bookings.Confirm)
}
