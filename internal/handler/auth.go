package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/config"
	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
	"github.com/phoenixfit/phoenix-fitness-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register creates an account with role USER.  Duplicate emails are
// rejected with 409 and never create a second row.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, strings.TrimSpace(req.Name), req.Email, req.Phone, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return FailErr(c, err)
		}
		return Fail(c, http.StatusInternalServerError, "create user failed")
	}
	return OK(c, http.StatusCreated, "User registered successfully")
}

// Login verifies credentials, records the login time and returns a
// signed token plus the user's public profile.  Unknown email and
// wrong password are indistinguishable to the caller, and a failed
// attempt never touches last_login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return Fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Fail(c, http.StatusInternalServerError, "query failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return Fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	if err := h.Users.TouchLastLogin(ctx, u.ID); err != nil {
		return Fail(c, http.StatusInternalServerError, "update login failed")
	}
	now := time.Now().UTC()
	u.LastLogin = &now

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Email, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "issue token failed")
	}
	return OK(c, http.StatusOK, loginResp{Token: access.Token, User: u})
}

// Validate resolves the bearer token to the current user record.  The
// token is re-verified here rather than relying on middleware so the
// endpoint reports InvalidToken and NotFound distinctly.
func (h *AuthHandler) Validate(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return Fail(c, http.StatusUnauthorized, "missing bearer token")
	}
	email, _, err := utils.ParseAccessToken(h.Cfg.JWTSecret, strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return Fail(c, http.StatusUnauthorized, "invalid token")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return FailErr(c, err)
		}
		return Fail(c, http.StatusInternalServerError, "query failed")
	}
	return OK(c, http.StatusOK, u)
}
