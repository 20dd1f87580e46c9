package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// BookingRepo provides data access to the bookings table.  Read paths
// return BookingDetail values that carry the guest email and room
// number resolved through joins, matching the shape the API serves.
// Write paths operate on BookingRecord values holding the internal
// foreign keys, and run inside caller-owned transactions so that the
// overlap check and the write commit atomically.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingRecord mirrors the schema of the bookings table.  It is used
// by the repository for inserts, updates and overlap scans.
type BookingRecord struct {
	ID       uint64
	GuestID  uint64
	RoomID   uint64
	CheckIn  time.Time
	CheckOut time.Time
}

// BookingDetail is a booking joined with its guest email and room
// number.  It is the read model served by the API.
type BookingDetail struct {
	ID         uint64
	GuestEmail string
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

const bookingDetailQ = `SELECT b.id, g.email, r.room_number, b.check_in, b.check_out
	FROM bookings b
	JOIN guests g ON g.id = b.guest_id
	JOIN rooms r ON r.id = b.room_id`

// ListAll returns every booking in insertion order.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, bookingDetailQ+` ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// ListWithin returns bookings fully contained in [lo, hi]:
// check_in >= lo AND check_out <= hi.  This is a containment filter,
// not an overlap filter; a booking straddling either bound is excluded.
func (r *BookingRepo) ListWithin(ctx context.Context, lo, hi time.Time) ([]BookingDetail, error) {
	const q = bookingDetailQ + ` WHERE b.check_in >= ? AND b.check_out <= ? ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, q, lo, hi)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// ListByGuest returns all bookings belonging to the given guest in
// insertion order.
func (r *BookingRepo) ListByGuest(ctx context.Context, guestID uint64) ([]BookingDetail, error) {
	const q = bookingDetailQ + ` WHERE b.guest_id = ? ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, q, guestID)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// ExistsTx reports whether a booking with the given id exists, locking
// the row when it does.  Used by the update path before re-running the
// overlap check.
func (r *BookingRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `SELECT id FROM bookings WHERE id = ? FOR UPDATE`
	var got uint64
	err := tx.QueryRowContext(ctx, q, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	return err
}

// ListForRoomTx returns every booking for the given room inside the
// provided transaction, locking the rows read.  The booking service
// runs the overlap check over the returned set; the locks (together
// with the room row lock taken by the caller) prevent a concurrent
// request from inserting a conflicting booking between the check and
// the write.
func (r *BookingRepo) ListForRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]BookingRecord, error) {
	const q = `SELECT id, guest_id, room_id, check_in, check_out FROM bookings WHERE room_id = ? FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	records := make([]BookingRecord, 0)
	for rows.Next() {
		var rec BookingRecord
		if err := rows.Scan(&rec.ID, &rec.GuestID, &rec.RoomID, &rec.CheckIn, &rec.CheckOut); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateTx inserts a new booking within the provided transaction and
// populates the generated ID on the record.  The caller must commit
// or roll back the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *BookingRecord) error {
	const q = `INSERT INTO bookings (guest_id, room_id, check_in, check_out) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, rec.GuestID, rec.RoomID, rec.CheckIn, rec.CheckOut)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// UpdateTx replaces guest, room and both dates of an existing booking
// within the provided transaction.  Partial updates are not supported;
// the operation is a full replace.
func (r *BookingRepo) UpdateTx(ctx context.Context, tx *sql.Tx, rec *BookingRecord) error {
	const q = `UPDATE bookings SET guest_id = ?, room_id = ?, check_in = ?, check_out = ? WHERE id = ?`
	// Zero affected rows is fine here: the row was locked by ExistsTx,
	// so it still exists and the values simply did not change.
	_, err := tx.ExecContext(ctx, q, rec.GuestID, rec.RoomID, rec.CheckIn, rec.CheckOut, rec.ID)
	return err
}

// Delete removes the booking with the given id.  No overlap re-check
// is needed on delete.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(result, ErrBookingNotFound)
}

func scanDetails(rows *sql.Rows) ([]BookingDetail, error) {
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.GuestEmail, &d.RoomNumber, &d.CheckIn, &d.CheckOut); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
