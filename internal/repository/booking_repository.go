package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phoenixfit/phoenix-fitness-api/internal/model"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo persists bookings and owns the one transactional piece
// of business logic in the system: reserving a capacity slot.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = `id,user_id,session_id,amount,status,payment_id,order_id,
payment_method,notes,meet_link,created_at,updated_at`

// PaymentMeta carries the payment fields the client submits with a
// booking request.  All fields are optional; the payment gateway is a
// stub and nothing here is verified.
type PaymentMeta struct {
	PaymentID     *string
	OrderID       *string
	PaymentMethod *string
	Notes         *string
}

// Book reserves one slot on a session for a user and records the
// booking.  The whole operation runs in a single transaction:
//
//  1. the session row is read to obtain the current price and meet link
//     (ErrSessionNotFound when absent);
//  2. an existing (user, session) booking aborts with ErrAlreadyBooked;
//  3. the participant counter is incremented with a conditional update
//     that only matches while current_participants < max_participants;
//     zero affected rows means the last slot was taken, ErrSessionFull.
//     Two racing bookings for one remaining slot therefore serialize on
//     the session row and exactly one of them commits;
//  4. the booking row is inserted with status CONFIRMED and the
//     session's price as amount.  The unique (user_id, session_id) key
//     backstops step 2 against concurrent duplicates.
func (r *BookingRepo) Book(ctx context.Context, sessionID, userID uint64, meta PaymentMeta) (model.Booking, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var price float64
	var meetLink *string
	err = tx.QueryRowContext(ctx,
		"SELECT price, meet_link FROM sessions WHERE id=? LIMIT 1", sessionID).
		Scan(&price, &meetLink)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrSessionNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}

	var one int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM bookings WHERE user_id=? AND session_id=? LIMIT 1",
		userID, sessionID).Scan(&one)
	if err == nil {
		return model.Booking{}, ErrAlreadyBooked
	}
	if err != sql.ErrNoRows {
		return model.Booking{}, err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE sessions SET current_participants = current_participants + 1
		 WHERE id=? AND current_participants < max_participants`, sessionID)
	if err != nil {
		return model.Booking{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Booking{}, err
	}
	if n == 0 {
		return model.Booking{}, ErrSessionFull
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, session_id, amount, status, payment_id, order_id,
		 payment_method, notes, meet_link)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		userID, sessionID, price, model.BookingConfirmed,
		meta.PaymentID, meta.OrderID, meta.PaymentMethod, meta.Notes, meetLink)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Booking{}, ErrAlreadyBooked
		}
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}

	var b model.Booking
	err = tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=?", id).
		Scan(&b.ID, &b.UserID, &b.SessionID, &b.Amount, &b.Status, &b.PaymentID, &b.OrderID,
			&b.PaymentMethod, &b.Notes, &b.MeetLink, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	committed = true
	return b, nil
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.UserID, &b.SessionID, &b.Amount, &b.Status, &b.PaymentID, &b.OrderID,
			&b.PaymentMethod, &b.Notes, &b.MeetLink, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return b, ErrBookingNotFound
	}
	return b, err
}

// UpdateStatus persists a new status on a booking.  Unknown status
// values are rejected with ErrInvalidStatus before touching the row.
// Cancelling a booking does not release the session's capacity slot.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return model.Booking{}, ErrInvalidStatus
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", status, id)
	if err != nil {
		return model.Booking{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Either absent or unchanged; distinguish by lookup.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Booking{}, err
		}
	}
	return r.GetByID(ctx, id)
}

const bookingDetailSelect = `SELECT b.id, b.user_id, b.session_id, b.amount, b.status,
       b.payment_id, b.order_id, b.payment_method, b.notes, b.meet_link,
       b.created_at, b.updated_at,
       s.title, s.instructor_name, s.scheduled_date, u.email
FROM bookings b
JOIN sessions s ON s.id = b.session_id
JOIN users u ON u.id = b.user_id`

func scanBookingDetails(rows *sql.Rows) ([]model.BookingDetail, error) {
	details := make([]model.BookingDetail, 0)
	for rows.Next() {
		var d model.BookingDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.SessionID, &d.Amount, &d.Status,
			&d.PaymentID, &d.OrderID, &d.PaymentMethod, &d.Notes, &d.MeetLink,
			&d.CreatedAt, &d.UpdatedAt,
			&d.SessionTitle, &d.InstructorName, &d.ScheduledDate, &d.UserEmail); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListByUser returns the user's bookings joined with their sessions,
// newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingDetailSelect+" WHERE b.user_id = ? ORDER BY b.created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}

// ListAll returns every booking joined with session and user, newest
// first.  Admin only.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingDetailSelect+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}
