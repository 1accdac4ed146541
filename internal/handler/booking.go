package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/queue"
	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
	"github.com/phoenixfit/phoenix-fitness-api/internal/service"
)

// BookingHandler serves the booking workflow and the booking listing
// endpoints.  Authentication and role checks are performed by
// middleware; handlers resolve the caller through the email claim.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
}

func NewBookingHandler(b *repository.BookingRepo, u *repository.UserRepo, s *repository.SessionRepo) *BookingHandler {
	if b == nil || u == nil || s == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Users: u, Sessions: s}
}

type bookReq struct {
	PaymentID     string `json:"paymentId"`
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// Book handles POST /api/sessions/:id/book.  It resolves the caller,
// runs the transactional booking workflow and, on success, publishes a
// booking.confirmed event.  Publishing is fire-and-forget: a broker
// outage never fails a committed booking.
func (h *BookingHandler) Book(c echo.Context) error {
	email, ok := currentEmail(c)
	if !ok {
		return Fail(c, http.StatusUnauthorized, "unauthorized")
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || sessionID == 0 {
		return Fail(c, http.StatusBadRequest, "invalid session id")
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		return FailErr(c, err)
	}

	booking, err := h.Bookings.Book(ctx, sessionID, user.ID, repository.PaymentMeta{
		PaymentID:     optional(req.PaymentID),
		OrderID:       optional(req.OrderID),
		PaymentMethod: optional(req.PaymentMethod),
		Notes:         optional(req.Notes),
	})
	if err != nil {
		return FailErr(c, err)
	}

	if session, err := h.Sessions.GetByID(ctx, sessionID); err == nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:      booking.ID,
			UserID:         user.ID,
			UserEmail:      user.Email,
			SessionID:      session.ID,
			SessionTitle:   session.Title,
			InstructorName: session.InstructorName,
			ScheduledDate:  session.ScheduledDate.UTC().Format(time.RFC3339),
			Amount:         booking.Amount,
			ConfirmedAt:    booking.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() { _ = service.PublishBookingConfirmed(context.Background(), ev) }()
	}

	return OK(c, http.StatusCreated, booking)
}

// MyBookings handles GET /api/bookings/user: the caller's bookings,
// newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	email, ok := currentEmail(c)
	if !ok {
		return Fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		return FailErr(c, err)
	}
	details, err := h.Bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load bookings failed")
	}
	return OK(c, http.StatusOK, details)
}

// All handles GET /api/bookings (admin).
func (h *BookingHandler) All(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	details, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "load bookings failed")
	}
	return OK(c, http.StatusOK, details)
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PATCH /api/bookings/:id/status (admin).  The
// session's participant counter is left untouched: cancelling a
// booking does not free the slot.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return Fail(c, http.StatusBadRequest, "invalid booking id")
	}
	var req updateStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.UpdateStatus(ctx, id, strings.ToUpper(strings.TrimSpace(req.Status)))
	if err != nil {
		return FailErr(c, err)
	}
	return OK(c, http.StatusOK, booking)
}
