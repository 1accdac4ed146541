package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/handler"
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified roles.  The accepted
// values correspond to the JWT's "role" claim (USER, ADMIN).  If the
// role is missing or not in the allowed set the request is aborted
// with 403 Forbidden.  It assumes JWTAuth has already stored the role
// in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return handler.Fail(c, http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
