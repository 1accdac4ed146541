// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a class booking is successfully
// confirmed. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID      uint64  `json:"booking_id"`
	UserID         uint64  `json:"user_id"`
	UserEmail      string  `json:"user_email"`
	SessionID      uint64  `json:"session_id"`
	SessionTitle   string  `json:"session_title"`
	InstructorName string  `json:"instructor_name"`
	ScheduledDate  string  `json:"scheduled_date"`
	Amount         float64 `json:"amount"`
	ConfirmedAt    string  `json:"confirmed_at"`
}
