package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbanest/rental-search/api/internal/auth"
	"github.com/urbanest/rental-search/api/internal/config"
	"github.com/urbanest/rental-search/api/internal/handler"
	middlewarepkg "github.com/urbanest/rental-search/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserAdminHandler
	Search        *handler.SearchHandler
	Localities    *handler.LocalityHandler
	Contact       *handler.ContactHandler
	SavedSearches *handler.SavedSearchHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)
	e.GET("/localities", handlers.Localities.List)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
	secured.POST("/contact-owner", handlers.Contact.ContactOwner)

	secured.POST("/searches", handlers.SavedSearches.Save)
	secured.GET("/searches", handlers.SavedSearches.List)
	secured.GET("/searches/:id", handlers.SavedSearches.Get)
	secured.DELETE("/searches/:id", handlers.SavedSearches.Delete)

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)
}
