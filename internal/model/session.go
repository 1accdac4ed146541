package model

import "time"

// Session status values stored in the sessions.status column.
const (
	SessionScheduled = "SCHEDULED"
	SessionOngoing   = "ONGOING"
	SessionCompleted = "COMPLETED"
	SessionCancelled = "CANCELLED"
)

// Session represents a scheduled, capacity-bounded group class as
// stored in the `sessions` table.  CurrentParticipants is mutated
// exclusively by the booking workflow, which guarantees
// current_participants <= max_participants at all times.
//
// Fields:
//  ID                  – primary key identifier.
//  Title               – class title.
//  Description         – optional longer description.
//  InstructorName      – name of the trainer running the class.
//  ScheduledDate       – when the class takes place (UTC).
//  Duration            – length in minutes (positive).
//  MaxParticipants     – capacity of the class (positive).
//  CurrentParticipants – confirmed bookings counted against capacity.
//  Price               – price per booking (positive).
//  ImageURL            – optional cover image.
//  MeetLink            – video call link copied onto each booking.
//  Status              – SCHEDULED, ONGOING, COMPLETED or CANCELLED.
//  CreatedAt           – creation timestamp.
//  UpdatedAt           – last update timestamp.
type Session struct {
	ID                  uint64    `json:"id"`
	Title               string    `json:"title"`
	Description         *string   `json:"description,omitempty"`
	InstructorName      string    `json:"instructorName"`
	ScheduledDate       time.Time `json:"scheduledDate"`
	Duration            int       `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Price               float64   `json:"price"`
	ImageURL            *string   `json:"imageUrl,omitempty"`
	MeetLink            *string   `json:"meetLink,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
