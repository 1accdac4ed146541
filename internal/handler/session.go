package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

// SessionHandler serves the class schedule.  Reads are public;
// mutations sit behind the ADMIN role middleware, booking behind the
// USER role middleware (see BookingHandler.Book).
type SessionHandler struct {
	Sessions *repository.SessionRepo
}

func NewSessionHandler(s *repository.SessionRepo) *SessionHandler {
	return &SessionHandler{Sessions: s}
}

type sessionReq struct {
	Title           string  `json:"title" validate:"required,min=2,max=200"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	InstructorName  string  `json:"instructorName" validate:"required,min=2,max=100"`
	ScheduledDate   string  `json:"scheduledDate" validate:"required"`
	Duration        int     `json:"duration" validate:"required,gt=0"`
	MaxParticipants int     `json:"maxParticipants" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	ImageURL        string  `json:"imageUrl" validate:"omitempty,max=500"`
	MeetLink        string  `json:"meetLink" validate:"omitempty,max=500"`
}

// record parses the scheduled date and converts the request into the
// repository's writable column set.  Both RFC 3339 and the plain
// "2006-01-02T15:04:05" form without zone are accepted; the latter is
// read as UTC.
func (req *sessionReq) record() (repository.SessionRecord, error) {
	when, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		when, err = time.ParseInLocation("2006-01-02T15:04:05", req.ScheduledDate, time.UTC)
		if err != nil {
			return repository.SessionRecord{}, err
		}
	}
	return repository.SessionRecord{
		Title:           req.Title,
		Description:     optional(req.Description),
		InstructorName:  req.InstructorName,
		ScheduledDate:   when.UTC(),
		Duration:        req.Duration,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		ImageURL:        optional(req.ImageURL),
		MeetLink:        optional(req.MeetLink),
	}, nil
}

// List handles GET /api/sessions.
func (h *SessionHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sessions, err := h.Sessions.ListAll(ctx)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load sessions failed")
	}
	return OK(c, http.StatusOK, sessions)
}

// Upcoming handles GET /api/sessions/upcoming: sessions scheduled from
// now on, soonest first.
func (h *SessionHandler) Upcoming(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sessions, err := h.Sessions.ListUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load sessions failed")
	}
	return OK(c, http.StatusOK, sessions)
}

// Available handles GET /api/sessions/available: SCHEDULED sessions
// with spare capacity.
func (h *SessionHandler) Available(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sessions, err := h.Sessions.ListAvailable(ctx)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load sessions failed")
	}
	return OK(c, http.StatusOK, sessions)
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid session id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Sessions.GetByID(ctx, id)
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, s)
}

// Create handles POST /api/sessions (admin).  New sessions start
// SCHEDULED with zero participants.
func (h *SessionHandler) Create(c echo.Context) error {
	var req sessionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rec, err := req.record()
	if err != nil {
		return Fail(c, http.StatusUnprocessableEntity, "invalid scheduledDate")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Sessions.Create(ctx, rec)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "create session failed")
	}
	return OK(c, http.StatusCreated, s)
}

// Update handles PUT /api/sessions/:id (admin).  The participant
// counter and status are not touched here.
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid session id")
	}
	var req sessionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rec, err := req.record()
	if err != nil {
		return Fail(c, http.StatusUnprocessableEntity, "invalid scheduledDate")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Sessions.Update(ctx, id, rec)
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, s)
}

// Delete handles DELETE /api/sessions/:id (admin).
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid session id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.Delete(ctx, id); err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, "Session deleted successfully")
}
