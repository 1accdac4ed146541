package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestOKEnvelope(t *testing.T) {
	c, rec := newTestContext(t)
	if err := OK(c, http.StatusOK, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("OK: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Error != nil || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestFailEnvelope(t *testing.T) {
	c, rec := newTestContext(t)
	if err := Fail(c, http.StatusBadRequest, "nope"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error == nil || *env.Error != "nope" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestFailErrStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{repository.ErrUserNotFound, http.StatusNotFound},
		{repository.ErrCategoryNotFound, http.StatusNotFound},
		{repository.ErrProductNotFound, http.StatusNotFound},
		{repository.ErrSessionNotFound, http.StatusNotFound},
		{repository.ErrBookingNotFound, http.StatusNotFound},
		{repository.ErrEmailExists, http.StatusConflict},
		{repository.ErrCategoryExists, http.StatusConflict},
		{repository.ErrSessionFull, http.StatusConflict},
		{repository.ErrAlreadyBooked, http.StatusConflict},
		{repository.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{repository.ErrMaxBelowParticipants, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		c, rec := newTestContext(t)
		if err := FailErr(c, tc.err); err != nil {
			t.Fatalf("FailErr(%v): %v", tc.err, err)
		}
		if rec.Code != tc.want {
			t.Errorf("FailErr(%v) status = %d, want %d", tc.err, rec.Code, tc.want)
		}
		if env := decodeEnvelope(t, rec); env.Success {
			t.Errorf("FailErr(%v) produced a success envelope", tc.err)
		}
	}
}

func TestFailErrHidesInternalErrors(t *testing.T) {
	c, rec := newTestContext(t)
	if err := FailErr(c, errContains("driver: bad connection")); err != nil {
		t.Fatalf("FailErr: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || *env.Error != "internal error" {
		t.Fatalf("internal detail leaked: %+v", env)
	}
}

type errContains string

func (e errContains) Error() string { return string(e) }

func TestCurrentEmail(t *testing.T) {
	c, _ := newTestContext(t)
	if _, ok := currentEmail(c); ok {
		t.Fatal("email reported present on empty context")
	}
	c.Set("email", "amy@example.com")
	email, ok := currentEmail(c)
	if !ok || email != "amy@example.com" {
		t.Fatalf("got %q/%v", email, ok)
	}
}

func TestOptional(t *testing.T) {
	if optional("") != nil || optional("   ") != nil {
		t.Fatal("blank strings should map to nil")
	}
	if p := optional(" x "); p == nil || *p != "x" {
		t.Fatalf("got %v", p)
	}
}
