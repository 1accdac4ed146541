// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/handler"
	"github.com/phoenixfit/phoenix-fitness-api/internal/middleware"
	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check, used by load balancers to
// verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration, login and token validation
// under /api/auth. None of these require an existing session; validate
// re-verifies the bearer token itself so it can report invalid tokens
// and deleted users distinctly.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/validate", a.Validate)
}

// RegisterCatalog registers the public category and product reads plus
// the admin-only mutations. Public list endpoints take the response
// cache so repeated storefront reads skip the database.
func RegisterCatalog(e *echo.Echo, ch *handler.CategoryHandler, ph *handler.ProductHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/api/categories", ch.List, cache)
	e.GET("/api/categories/:id", ch.Get, cache)
	e.GET("/api/products", ph.List, cache)
	e.GET("/api/products/:id", ph.Get, cache)
	e.GET("/api/products/category/:id", ph.ByCategory, cache)

	admin := e.Group("/api", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
	admin.POST("/categories", ch.Create)
	admin.PUT("/categories/:id", ch.Update)
	admin.DELETE("/categories/:id", ch.Delete)
	admin.POST("/products", ph.Create)
	admin.PUT("/products/:id", ph.Update)
	admin.DELETE("/products/:id", ph.Delete)
}

// RegisterSessions registers the public schedule reads, the admin
// session CRUD, and the authenticated booking endpoint.
func RegisterSessions(e *echo.Echo, sh *handler.SessionHandler, bh *handler.BookingHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/api/sessions", sh.List, cache)
	e.GET("/api/sessions/upcoming", sh.Upcoming, cache)
	e.GET("/api/sessions/available", sh.Available, cache)
	e.GET("/api/sessions/:id", sh.Get)

	e.POST("/api/sessions/:id/book", bh.Book,
		middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleUser, model.RoleAdmin))

	admin := e.Group("/api/sessions", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
	admin.POST("", sh.Create)
	admin.PUT("/:id", sh.Update)
	admin.DELETE("/:id", sh.Delete)
}

// RegisterBookings registers the booking listings and the admin status
// update.
func RegisterBookings(e *echo.Echo, bh *handler.BookingHandler, jwtSecret string) {
	e.GET("/api/bookings/user", bh.MyBookings,
		middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleUser, model.RoleAdmin))

	admin := e.Group("/api/bookings", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
	admin.GET("", bh.All)
	admin.PATCH("/:id/status", bh.UpdateStatus)
}

// RegisterPayments registers the payment stub endpoints for
// authenticated users.
func RegisterPayments(e *echo.Echo, ph *handler.PaymentHandler, jwtSecret string) {
	g := e.Group("/api/payments", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	g.POST("/create-order", ph.CreateOrder)
	g.POST("/verify", ph.Verify)
}

// RegisterUsers registers the admin user listing.
func RegisterUsers(e *echo.Echo, uh *handler.UserHandler, jwtSecret string) {
	e.GET("/api/users", uh.List,
		middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
}
