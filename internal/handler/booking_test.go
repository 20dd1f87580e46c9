package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/repository"
	"github.com/iliyamo/hotel-booking-api/internal/service"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newBookingHandler wires a handler to a service backed by sqlmock.
// Event publishing stays disabled.
func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	svc := service.NewBookingService(db,
		repository.NewGuestRepo(db),
		repository.NewRoomRepo(db),
		repository.NewBookingRepo(db))
	return &BookingHandler{Service: svc}, mock
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	e := newEcho()
	h, mock := newBookingHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM guests WHERE email = \?`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone"}).
			AddRow(1, "Ada", "Lovelace", "ada@example.com", "555-0101"))
	mock.ExpectQuery(`FROM rooms WHERE room_number = \? FOR UPDATE`).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type", "price"}).
			AddRow(2, 101, "double", "120.00"))
	mock.ExpectQuery(`FROM bookings WHERE room_id = \? FOR UPDATE`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "room_id", "check_in", "check_out"}))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	c, rec := postJSON(e, "/bookings/",
		`{"guest_email":"ada@example.com","room_number":101,"check_in":"2024-03-01","check_out":"2024-03-05"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"id":7`, `"guest_email":"ada@example.com"`, `"room_number":101`, `"check_in":"2024-03-01"`, `"check_out":"2024-03-05"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("response missing %s: %s", want, rec.Body.String())
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateBookingBadDateFormat(t *testing.T) {
	e := newEcho()
	h, mock := newBookingHandler(t)

	// Parsing fails before any query runs.
	c, rec := postJSON(e, "/bookings/",
		`{"guest_email":"ada@example.com","room_number":101,"check_in":"03/01/2024","check_out":"2024-03-05"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid date format. Use YYYY-MM-DD.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	e := newEcho()
	h, mock := newBookingHandler(t)

	c, rec := postJSON(e, "/bookings/",
		`{"room_number":101,"check_in":"2024-03-01","check_out":"2024-03-05"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateBookingReversedDates(t *testing.T) {
	e := newEcho()
	h, mock := newBookingHandler(t)

	c, rec := postJSON(e, "/bookings/",
		`{"guest_email":"ada@example.com","room_number":101,"check_in":"2024-03-05","check_out":"2024-03-01"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "check_out date is before check_in date.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListFilteredBadDate(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("check_in", "check_out")
	c.SetParamValues("not-a-date", "2024-03-05")

	if err := h.ListFiltered(c); err != nil {
		t.Fatalf("ListFiltered: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid date format. Use YYYY-MM-DD.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListFilteredReversedRange(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("check_in", "check_out")
	c.SetParamValues("2024-03-05", "2024-03-01")

	if err := h.ListFiltered(c); err != nil {
		t.Fatalf("ListFiltered: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "check_out date is before check_in date.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDeleteBookingNotFound(t *testing.T) {
	e := newEcho()
	h, mock := newBookingHandler(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \?`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateBookingBadID(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}
