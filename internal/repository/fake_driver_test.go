package repository

// A minimal database/sql/driver implementation backing the repository
// tests.  It emulates one session row plus its bookings and answers
// exactly the statements the repositories issue, so the transactional
// behaviour of the booking workflow (conditional increment, rollback,
// duplicate-key insert) can be exercised without a MySQL server.

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

type fakeState struct {
	mu sync.Mutex

	sessionExists bool
	sessionID     int64
	title         string
	instructor    string
	scheduled     time.Time
	duration      int
	max           int
	current       int
	price         float64
	meetLink      *string
	status        string
	createdAt     time.Time
	updatedAt     time.Time

	booked      map[int64]bool // user ids holding a booking on the session
	dupOnInsert bool           // force a duplicate-key error on the next insert

	lastBooking    bookingRow
	nextBookingID  int64
	commits        int
	rollbacks      int
	sessionUpdates int
}

type bookingRow struct {
	id            int64
	userID        int64
	sessionID     int64
	amount        float64
	status        string
	paymentID     *string
	orderID       *string
	paymentMethod *string
	notes         *string
	meetLink      *string
	createdAt     time.Time
	updatedAt     time.Time
}

func newSessionState(current, max int) *fakeState {
	link := "https://meet.example.com/yoga"
	now := time.Now().UTC()
	return &fakeState{
		sessionExists: true,
		sessionID:     1,
		title:         "Morning Yoga",
		instructor:    "Priya",
		scheduled:     now.Add(24 * time.Hour),
		duration:      60,
		max:           max,
		current:       current,
		price:         499,
		meetLink:      &link,
		status:        "SCHEDULED",
		createdAt:     now,
		updatedAt:     now,
		booked:        map[int64]bool{},
		nextBookingID: 100,
	}
}

func newFakeDB(st *fakeState) *sql.DB {
	return sql.OpenDB(fakeConnector{st: st})
}

type fakeConnector struct{ st *fakeState }

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{st: c.st}, nil
}
func (c fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open via connector")
}

type fakeConn struct{ st *fakeState }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements unsupported")
}
func (c *fakeConn) Close() error { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	st := c.st
	st.mu.Lock()
	defer st.mu.Unlock()
	snapBooked := make(map[int64]bool, len(st.booked))
	for k, v := range st.booked {
		snapBooked[k] = v
	}
	return &fakeTx{
		st:          st,
		snapCurrent: st.current,
		snapBooked:  snapBooked,
		snapLast:    st.lastBooking,
		snapNextID:  st.nextBookingID,
	}, nil
}

// fakeTx snapshots the mutable state at begin; Rollback restores it so
// tests can observe that aborted bookings leave no trace.
type fakeTx struct {
	st          *fakeState
	snapCurrent int
	snapBooked  map[int64]bool
	snapLast    bookingRow
	snapNextID  int64
}

func (t *fakeTx) Commit() error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	t.st.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	st := t.st
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = t.snapCurrent
	st.booked = t.snapBooked
	st.lastBooking = t.snapLast
	st.nextBookingID = t.snapNextID
	st.rollbacks++
	return nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	st := c.st
	st.mu.Lock()
	defer st.mu.Unlock()

	switch {
	case strings.Contains(query, "SELECT price, meet_link"):
		if !st.sessionExists {
			return &fakeRows{cols: []string{"price", "meet_link"}}, nil
		}
		return &fakeRows{
			cols: []string{"price", "meet_link"},
			rows: [][]driver.Value{{st.price, strVal(st.meetLink)}},
		}, nil

	case strings.Contains(query, "SELECT 1 FROM bookings"):
		user := args[0].Value.(int64)
		if st.booked[user] {
			return &fakeRows{cols: []string{"1"}, rows: [][]driver.Value{{int64(1)}}}, nil
		}
		return &fakeRows{cols: []string{"1"}}, nil

	case strings.Contains(query, "FROM bookings WHERE id=?"):
		b := st.lastBooking
		return &fakeRows{
			cols: strings.Split("id,user_id,session_id,amount,status,payment_id,order_id,payment_method,notes,meet_link,created_at,updated_at", ","),
			rows: [][]driver.Value{{
				b.id, b.userID, b.sessionID, b.amount, b.status,
				strVal(b.paymentID), strVal(b.orderID), strVal(b.paymentMethod),
				strVal(b.notes), strVal(b.meetLink), b.createdAt, b.updatedAt,
			}},
		}, nil

	case strings.Contains(query, "FROM sessions WHERE id=?"):
		cols := strings.Split("id,title,description,instructor_name,scheduled_date,duration,max_participants,current_participants,price,image_url,meet_link,status,created_at,updated_at", ",")
		if !st.sessionExists {
			return &fakeRows{cols: cols}, nil
		}
		return &fakeRows{
			cols: cols,
			rows: [][]driver.Value{{
				st.sessionID, st.title, nil, st.instructor, st.scheduled,
				int64(st.duration), int64(st.max), int64(st.current), st.price,
				nil, strVal(st.meetLink), st.status, st.createdAt, st.updatedAt,
			}},
		}, nil
	}
	return nil, errors.New("unexpected query: " + query)
}

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	st := c.st
	st.mu.Lock()
	defer st.mu.Unlock()

	switch {
	case strings.Contains(query, "UPDATE sessions SET current_participants"):
		if st.current < st.max {
			st.current++
			return fakeResult{affected: 1}, nil
		}
		return fakeResult{affected: 0}, nil

	case strings.Contains(query, "INSERT INTO bookings"):
		user := args[0].Value.(int64)
		if st.dupOnInsert || st.booked[user] {
			return nil, errors.New("Error 1062 (23000): Duplicate entry")
		}
		st.nextBookingID++
		now := time.Now().UTC()
		st.lastBooking = bookingRow{
			id:            st.nextBookingID,
			userID:        user,
			sessionID:     args[1].Value.(int64),
			amount:        args[2].Value.(float64),
			status:        args[3].Value.(string),
			paymentID:     strPtr(args[4].Value),
			orderID:       strPtr(args[5].Value),
			paymentMethod: strPtr(args[6].Value),
			notes:         strPtr(args[7].Value),
			meetLink:      strPtr(args[8].Value),
			createdAt:     now,
			updatedAt:     now,
		}
		st.booked[user] = true
		return fakeResult{id: st.nextBookingID, affected: 1}, nil

	case strings.Contains(query, "UPDATE sessions SET title=?"):
		st.title = args[0].Value.(string)
		st.instructor = args[2].Value.(string)
		st.scheduled = args[3].Value.(time.Time)
		st.duration = int(args[4].Value.(int64))
		st.max = int(args[5].Value.(int64))
		st.price = args[6].Value.(float64)
		st.meetLink = strPtr(args[8].Value)
		st.sessionUpdates++
		return fakeResult{affected: 1}, nil
	}
	return nil, errors.New("unexpected exec: " + query)
}

type fakeRows struct {
	cols []string
	rows [][]driver.Value
	i    int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }
func (r *fakeRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

type fakeResult struct{ id, affected int64 }

func (r fakeResult) LastInsertId() (int64, error) { return r.id, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

func strVal(p *string) driver.Value {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(v driver.Value) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
