// Package service implements the booking orchestration: natural-key
// resolution, date validation, the overlap check and the atomic
// commit.  Handlers translate the errors defined here into HTTP
// responses.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/hotel-booking-api/internal/model"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// ErrInvalidRange is returned when check_out is before check_in.
var ErrInvalidRange = errors.New("check_out date is before check_in date")

// RoomBookedError reports that the requested dates overlap an existing
// booking for the room.  It carries the room number so callers can
// name the room in the response.
type RoomBookedError struct {
	RoomNumber int
}

func (e *RoomBookedError) Error() string {
	return fmt.Sprintf("room %d is already booked for the selected dates", e.RoomNumber)
}

// BookingService coordinates booking creation, update, deletion and
// listing.  Every mutating operation resolves the guest by email and
// the room by number, re-asserts the date ordering, runs the overlap
// check and writes, all inside a single serializable transaction with
// the room row locked.  Two concurrent requests for the same room
// therefore cannot both pass the overlap check.
type BookingService struct {
	db       *sql.DB
	guests   *repository.GuestRepo
	rooms    *repository.RoomRepo
	bookings *repository.BookingRepo
}

// NewBookingService constructs a BookingService.  All dependencies
// must be non-nil.
func NewBookingService(db *sql.DB, guests *repository.GuestRepo, rooms *repository.RoomRepo, bookings *repository.BookingRepo) *BookingService {
	if db == nil || guests == nil || rooms == nil || bookings == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{db: db, guests: guests, rooms: rooms, bookings: bookings}
}

// Create books a room for a guest over [checkIn, checkOut].  It fails
// with repository.ErrGuestNotFound or repository.ErrRoomNotFound when
// a natural key does not resolve, ErrInvalidRange when the dates are
// reversed and *RoomBookedError when the range overlaps an existing
// booking for the room.  Nothing is written on any failure path.
func (s *BookingService) Create(ctx context.Context, guestEmail string, roomNumber int, checkIn, checkOut time.Time) (*repository.BookingDetail, error) {
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidRange
	}
	var detail *repository.BookingDetail
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		guest, err := s.guests.GetByEmailTx(ctx, tx, guestEmail)
		if err != nil {
			return err
		}
		room, err := s.rooms.GetByNumberForUpdateTx(ctx, tx, roomNumber)
		if err != nil {
			return err
		}
		existing, err := s.bookings.ListForRoomTx(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if hasOverlap(existing, checkIn, checkOut, 0) {
			return &RoomBookedError{RoomNumber: room.RoomNumber}
		}
		rec := &repository.BookingRecord{GuestID: guest.ID, RoomID: room.ID, CheckIn: checkIn, CheckOut: checkOut}
		if err := s.bookings.CreateTx(ctx, tx, rec); err != nil {
			return err
		}
		detail = &repository.BookingDetail{
			ID:         rec.ID,
			GuestEmail: guest.Email,
			RoomNumber: room.RoomNumber,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Update replaces guest, room and both dates of an existing booking.
// Partial updates are not supported.  The overlap check runs against
// the new room and excludes the booking itself, so updating a booking
// to its own unchanged slot succeeds.
func (s *BookingService) Update(ctx context.Context, bookingID uint64, guestEmail string, roomNumber int, checkIn, checkOut time.Time) (*repository.BookingDetail, error) {
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidRange
	}
	var detail *repository.BookingDetail
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.bookings.ExistsTx(ctx, tx, bookingID); err != nil {
			return err
		}
		guest, err := s.guests.GetByEmailTx(ctx, tx, guestEmail)
		if err != nil {
			return err
		}
		room, err := s.rooms.GetByNumberForUpdateTx(ctx, tx, roomNumber)
		if err != nil {
			return err
		}
		existing, err := s.bookings.ListForRoomTx(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if hasOverlap(existing, checkIn, checkOut, bookingID) {
			return &RoomBookedError{RoomNumber: room.RoomNumber}
		}
		rec := &repository.BookingRecord{ID: bookingID, GuestID: guest.ID, RoomID: room.ID, CheckIn: checkIn, CheckOut: checkOut}
		if err := s.bookings.UpdateTx(ctx, tx, rec); err != nil {
			return err
		}
		detail = &repository.BookingDetail{
			ID:         bookingID,
			GuestEmail: guest.Email,
			RoomNumber: room.RoomNumber,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete removes a booking unconditionally.  It fails with
// repository.ErrBookingNotFound when the id does not exist.
func (s *BookingService) Delete(ctx context.Context, bookingID uint64) error {
	return s.bookings.Delete(ctx, bookingID)
}

// ListAll returns every booking in insertion order.
func (s *BookingService) ListAll(ctx context.Context) ([]repository.BookingDetail, error) {
	return s.bookings.ListAll(ctx)
}

// ListWithin returns bookings fully contained in [lo, hi].  The bound
// ordering is validated by the API layer.
func (s *BookingService) ListWithin(ctx context.Context, lo, hi time.Time) ([]repository.BookingDetail, error) {
	return s.bookings.ListWithin(ctx, lo, hi)
}

// ListByGuest returns all bookings for the guest with the given email.
// An unknown email yields an empty list, not an error.
func (s *BookingService) ListByGuest(ctx context.Context, guestEmail string) ([]repository.BookingDetail, error) {
	guest, err := s.guests.GetByEmail(ctx, guestEmail)
	if errors.Is(err, repository.ErrGuestNotFound) {
		return []repository.BookingDetail{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByGuest(ctx, guest.ID)
}

// hasOverlap reports whether [checkIn, checkOut] intersects any
// booking in existing, ignoring the one with id excludeID (zero means
// exclude nothing).  Returns false on an empty set.
func hasOverlap(existing []repository.BookingRecord, checkIn, checkOut time.Time, excludeID uint64) bool {
	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if model.Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// withTx runs fn inside a serializable transaction, retrying once
// when MySQL aborts the transaction with a deadlock or lock wait
// timeout.  The rollback on failure guarantees no partial state is
// left behind.
func (s *BookingService) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			if isSerializationFailure(err) && attempt == 0 {
				lastErr = err
				continue
			}
			return err
		}
		if err := tx.Commit(); err != nil {
			if isSerializationFailure(err) && attempt == 0 {
				lastErr = err
				continue
			}
			return err
		}
		return nil
	}
	return lastErr
}

// isSerializationFailure matches the MySQL errors a serializable
// transaction may legitimately abort with under contention.
func isSerializationFailure(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213 = deadlock found, 1205 = lock wait timeout
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}
