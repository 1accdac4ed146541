package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

// Envelope is the uniform response wrapper used by every endpoint.
// Success mirrors whether Error is nil so clients can branch without
// inspecting status codes.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

// OK writes a success envelope with the given status and payload.
func OK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: &msg})
}

// FailErr maps repository sentinel errors onto HTTP statuses and
// writes the failure envelope.  Unknown errors are flattened into a
// generic 500 so internals never leak to clients.
func FailErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrEmailExists),
		errors.Is(err, repository.ErrCategoryExists),
		errors.Is(err, repository.ErrSessionFull),
		errors.Is(err, repository.ErrAlreadyBooked):
		return Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrInvalidStatus),
		errors.Is(err, repository.ErrMaxBelowParticipants):
		return Fail(c, http.StatusUnprocessableEntity, err.Error())
	}
	return Fail(c, http.StatusInternalServerError, "internal error")
}

// currentEmail returns the authenticated user's email stored in the
// context by the JWT middleware.
func currentEmail(c echo.Context) (string, bool) {
	email, ok := c.Get("email").(string)
	return email, ok && email != ""
}

// bindAndValidate decodes the JSON body into v and runs the
// registered validator.  Returns false after writing the error
// response when either step fails.
func bindAndValidate(c echo.Context, v interface{}) (bool, error) {
	if err := c.Bind(v); err != nil {
		return false, Fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(v); err != nil {
		return false, Fail(c, http.StatusUnprocessableEntity, err.Error())
	}
	return true, nil
}
