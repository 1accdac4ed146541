package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/utils"
)

const testSecret = "test-secret"

func doProtected(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	e.GET("/protected", h, mw...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bearer(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, email, role, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	return "Bearer " + tok.Token
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	rec := doProtected(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, bearer(t, "amy@example.com", "USER"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec := doProtected(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", "amy@example.com", "USER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec := doProtected(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestJWTAuthStoresClaims(t *testing.T) {
	e := echo.New()
	var gotEmail, gotRole string
	h := func(c echo.Context) error {
		gotEmail, _ = c.Get("email").(string)
		gotRole, _ = c.Get("role").(string)
		return c.NoContent(http.StatusOK)
	}
	e.GET("/claims", h, JWTAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	req.Header.Set("Authorization", bearer(t, "amy@example.com", "ADMIN"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotEmail != "amy@example.com" || gotRole != "ADMIN" {
		t.Fatalf("claims = %q/%q", gotEmail, gotRole)
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("USER", "ADMIN")}
	rec := doProtected(t, mw, bearer(t, "amy@example.com", "USER"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("ADMIN")}
	rec := doProtected(t, mw, bearer(t, "amy@example.com", "USER"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	// No JWTAuth in front, so the context carries no role at all.
	rec := doProtected(t, []echo.MiddlewareFunc{RequireRole("ADMIN")}, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}
