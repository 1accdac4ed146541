package handler

import (
	"testing"
	"time"
)

func TestSessionReqRecordParsesRFC3339(t *testing.T) {
	req := sessionReq{
		Title:           "Morning Yoga",
		InstructorName:  "Priya",
		ScheduledDate:   "2026-09-01T06:30:00+05:30",
		Duration:        60,
		MaxParticipants: 20,
		Price:           499,
	}
	rec, err := req.record()
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	want := time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC)
	if !rec.ScheduledDate.Equal(want) {
		t.Fatalf("scheduled = %v, want %v", rec.ScheduledDate, want)
	}
	if rec.Description != nil || rec.ImageURL != nil || rec.MeetLink != nil {
		t.Fatal("blank optionals should map to nil")
	}
}

func TestSessionReqRecordParsesNaiveTimestampAsUTC(t *testing.T) {
	req := sessionReq{ScheduledDate: "2026-09-01T06:30:00"}
	rec, err := req.record()
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	want := time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)
	if !rec.ScheduledDate.Equal(want) {
		t.Fatalf("scheduled = %v, want %v", rec.ScheduledDate, want)
	}
}

func TestSessionReqRecordRejectsGarbage(t *testing.T) {
	req := sessionReq{ScheduledDate: "next tuesday"}
	if _, err := req.record(); err == nil {
		t.Fatal("garbage date accepted")
	}
}
