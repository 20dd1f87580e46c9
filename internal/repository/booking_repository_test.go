package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/hotel-booking-api/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func parseDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestListWithinUsesContainmentBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	lo, hi := parseDay(t, "2024-03-01"), parseDay(t, "2024-03-31")

	mock.ExpectQuery(`WHERE b.check_in >= \? AND b.check_out <= \? ORDER BY b.id`).
		WithArgs(lo, hi).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "room_number", "check_in", "check_out"}).
			AddRow(1, "ada@example.com", 101, parseDay(t, "2024-03-02"), parseDay(t, "2024-03-04")))

	details, err := repo.ListWithin(context.Background(), lo, hi)
	if err != nil {
		t.Fatalf("ListWithin: %v", err)
	}
	if len(details) != 1 || details[0].GuestEmail != "ada@example.com" || details[0].RoomNumber != 101 {
		t.Fatalf("unexpected details: %+v", details)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListAllReturnsEmptySliceNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`FROM bookings b`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "room_number", "check_in", "check_out"}))

	details, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if details == nil || len(details) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", details)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateTxPopulatesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	rec := &BookingRecord{GuestID: 1, RoomID: 2,
		CheckIn:  parseDay(t, "2024-03-01"),
		CheckOut: parseDay(t, "2024-03-05")}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(rec.GuestID, rec.RoomID, rec.CheckIn, rec.CheckOut).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repo.CreateTx(context.Background(), tx, rec); err != nil {
		t.Fatalf("CreateTx: %v", err)
	}
	if rec.ID != 11 {
		t.Fatalf("want id 11, got %d", rec.ID)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestExistsTxNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM bookings WHERE id = \? FOR UPDATE`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repo.ExistsTx(context.Background(), tx, 42); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("want ErrBookingNotFound, got %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGuestDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	mock.ExpectExec(`DELETE FROM guests WHERE id = \?`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 42); !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("want ErrGuestNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoomGetByNumberNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectQuery(`FROM rooms WHERE room_number = \?`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByNumber(context.Background(), 999); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("want ErrRoomNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
