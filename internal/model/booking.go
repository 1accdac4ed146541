package model

import "time"

// Booking status values stored in the bookings.status column.
const (
	BookingConfirmed = "CONFIRMED"
	BookingPending   = "PENDING"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// ValidBookingStatus reports whether s maps to a known booking status.
// The admin status update rejects anything else.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking links one user to one session.  At most one booking exists
// per (user, session) pair, enforced by a unique key.  Amount is the
// session price at booking time; MeetLink is copied from the session
// so the link survives later session edits.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – user who booked.
//  SessionID     – session booked.
//  Amount        – price charged for this booking.
//  Status        – CONFIRMED on creation; updated by admin action.
//  PaymentID     – gateway payment reference, if any.
//  OrderID       – gateway order reference, if any.
//  PaymentMethod – method reported by the client.
//  Notes         – free-form notes supplied at booking time.
//  MeetLink      – video call link copied from the session.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Booking struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	SessionID     uint64    `json:"sessionId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentID     *string   `json:"paymentId,omitempty"`
	OrderID       *string   `json:"orderId,omitempty"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	MeetLink      *string   `json:"meetLink,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingDetail is a booking joined with the session it belongs to,
// returned by the listing endpoints so clients can render a booking
// without a second lookup.
type BookingDetail struct {
	Booking
	SessionTitle   string    `json:"sessionTitle"`
	InstructorName string    `json:"instructorName"`
	ScheduledDate  time.Time `json:"scheduledDate"`
	UserEmail      string    `json:"userEmail,omitempty"`
}
