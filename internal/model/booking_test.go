package model

import "testing"

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingConfirmed, BookingPending, BookingCancelled, BookingCompleted} {
		if !ValidBookingStatus(s) {
			t.Errorf("%s rejected", s)
		}
	}
	for _, s := range []string{"", "confirmed", "REFUNDED", "DONE"} {
		if ValidBookingStatus(s) {
			t.Errorf("%q accepted", s)
		}
	}
}
