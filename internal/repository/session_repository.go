package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")

	// ErrMaxBelowParticipants rejects a session update that would
	// shrink max_participants under the confirmed booking count; the
	// schema's CHECK constraint would otherwise surface the violation
	// as an opaque driver error.
	ErrMaxBelowParticipants = errors.New("max participants cannot drop below current participants")
)

type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

const sessionColumns = `id,title,description,instructor_name,scheduled_date,duration,
max_participants,current_participants,price,image_url,meet_link,status,created_at,updated_at`

func scanSessions(rows *sql.Rows) ([]model.Session, error) {
	sessions := make([]model.Session, 0)
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.InstructorName, &s.ScheduledDate,
			&s.Duration, &s.MaxParticipants, &s.CurrentParticipants, &s.Price,
			&s.ImageURL, &s.MeetLink, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetByID fetches a session by id.
func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (model.Session, error) {
	var s model.Session
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.Title, &s.Description, &s.InstructorName, &s.ScheduledDate,
			&s.Duration, &s.MaxParticipants, &s.CurrentParticipants, &s.Price,
			&s.ImageURL, &s.MeetLink, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrSessionNotFound
	}
	return s, err
}

// ListAll returns every session, soonest first.
func (r *SessionRepo) ListAll(ctx context.Context) ([]model.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions ORDER BY scheduled_date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// ListUpcoming returns sessions scheduled at or after the given time,
// soonest first.
func (r *SessionRepo) ListUpcoming(ctx context.Context, from time.Time) ([]model.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE scheduled_date >= ? ORDER BY scheduled_date ASC",
		from.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// ListAvailable returns SCHEDULED sessions with spare capacity.
func (r *SessionRepo) ListAvailable(ctx context.Context) ([]model.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sessionColumns+` FROM sessions
		 WHERE current_participants < max_participants AND status=?
		 ORDER BY scheduled_date ASC`, model.SessionScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// SessionRecord carries the writable columns for create and update.
// CurrentParticipants and Status are never set through it: new
// sessions start SCHEDULED with zero participants, and the counter is
// owned by the booking workflow.
type SessionRecord struct {
	Title           string
	Description     *string
	InstructorName  string
	ScheduledDate   time.Time
	Duration        int
	MaxParticipants int
	Price           float64
	ImageURL        *string
	MeetLink        *string
}

// Create inserts a session and returns the stored row.
func (r *SessionRepo) Create(ctx context.Context, rec SessionRecord) (model.Session, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO sessions (title, description, instructor_name, scheduled_date, duration,
		 max_participants, price, image_url, meet_link, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		rec.Title, rec.Description, rec.InstructorName, rec.ScheduledDate.UTC(), rec.Duration,
		rec.MaxParticipants, rec.Price, rec.ImageURL, rec.MeetLink, model.SessionScheduled)
	if err != nil {
		return model.Session{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Session{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces the writable columns of an existing session.  The
// new capacity must cover the participants already booked.
func (r *SessionRepo) Update(ctx context.Context, id uint64, rec SessionRecord) (model.Session, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	if rec.MaxParticipants < existing.CurrentParticipants {
		return model.Session{}, ErrMaxBelowParticipants
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE sessions SET title=?, description=?, instructor_name=?, scheduled_date=?, duration=?,
		 max_participants=?, price=?, image_url=?, meet_link=? WHERE id=?`,
		rec.Title, rec.Description, rec.InstructorName, rec.ScheduledDate.UTC(), rec.Duration,
		rec.MaxParticipants, rec.Price, rec.ImageURL, rec.MeetLink, id)
	if err != nil {
		return model.Session{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a session by id.
func (r *SessionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sessions WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
