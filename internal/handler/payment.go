package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
)

// PaymentHandler is a gateway stub.  It validates the caller and the
// session, mints an order id and reports verification success without
// contacting a real provider, so the booking flow can be exercised end
// to end.  Swapping in a real gateway only means replacing these two
// handlers; the request and response shapes stay.
type PaymentHandler struct {
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
}

func NewPaymentHandler(u *repository.UserRepo, s *repository.SessionRepo) *PaymentHandler {
	return &PaymentHandler{Users: u, Sessions: s}
}

type createOrderReq struct {
	SessionID uint64  `json:"sessionId" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency" validate:"omitempty,len=3"`
}

type orderResp struct {
	OrderID      string  `json:"orderId"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	SessionID    uint64  `json:"sessionId"`
	SessionTitle string  `json:"sessionTitle"`
	UserEmail    string  `json:"userEmail"`
}

// newOrderID mints a short gateway-style order reference.
func newOrderID() string {
	return "order_" + uuid.NewString()[:8]
}

// CreateOrder handles POST /api/payments/create-order.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	email, ok := currentEmail(c)
	if !ok {
		return Fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req createOrderReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		return FailErr(c, err)
	}
	session, err := h.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return FailErr(c, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	return OK(c, http.StatusCreated, orderResp{
		OrderID:      newOrderID(),
		Amount:       req.Amount,
		Currency:     currency,
		SessionID:    session.ID,
		SessionTitle: session.Title,
		UserEmail:    user.Email,
	})
}

type verifyReq struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature"`
}

type verifyResp struct {
	Verified  bool   `json:"verified"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
}

// Verify handles POST /api/payments/verify.  The stub accepts every
// well-formed request.
func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return OK(c, http.StatusOK, verifyResp{
		Verified:  true,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
	})
}
