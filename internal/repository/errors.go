// Package repository implements explicit SQL persistence for the
// application entities.  Failure cases are reported through sentinel
// errors so that handlers can distinguish scenarios without inspecting
// driver-specific error strings.  Each repository file declares the
// sentinels for its own entity; the values below are shared by the
// booking workflow, which spans sessions and bookings.
package repository

import (
	"errors"
	"strings"
)

// ErrSessionFull is returned when a booking is attempted against a
// session whose participant count has reached its capacity.  Handlers
// translate this into an HTTP 409 response.
var ErrSessionFull = errors.New("session is fully booked")

// ErrAlreadyBooked is returned when the (user, session) pair already
// has a booking.  Handlers translate this into an HTTP 409 response.
var ErrAlreadyBooked = errors.New("session already booked by this user")

// ErrInvalidStatus is returned when a status update names a value
// outside the known status set.
var ErrInvalidStatus = errors.New("invalid booking status")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062) without depending on the driver's error type.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
