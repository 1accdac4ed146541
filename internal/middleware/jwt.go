package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/handler"
	"github.com/phoenixfit/phoenix-fitness-api/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's email and role claims into the request
// context.  The provided secret must match the one used when issuing
// tokens.  Handlers behind this middleware read the identity via
// `c.Get("email")` and `c.Get("role")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return handler.Fail(c, http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			email, role, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return handler.Fail(c, http.StatusUnauthorized, "invalid token")
			}
			c.Set("email", email)
			c.Set("role", role)
			return next(c)
		}
	}
}
