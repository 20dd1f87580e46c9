package handler // handler defines http handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/model"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// Validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// parseDate parses a YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, s)
}

// parseID converts the named path parameter into a positive id.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// isDuplicateEntry reports whether err is a MySQL unique-key
// violation (duplicate guest email or room number).
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// bookingResponse is the wire shape for a booking: natural keys
// instead of internal ids, dates as YYYY-MM-DD.
type bookingResponse struct {
	ID         uint64 `json:"id"`
	GuestEmail string `json:"guest_email"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

func toBookingResponse(d repository.BookingDetail) bookingResponse {
	return bookingResponse{
		ID:         d.ID,
		GuestEmail: d.GuestEmail,
		RoomNumber: d.RoomNumber,
		CheckIn:    d.CheckIn.Format(model.DateLayout),
		CheckOut:   d.CheckOut.Format(model.DateLayout),
	}
}

func toBookingResponses(details []repository.BookingDetail) []bookingResponse {
	out := make([]bookingResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toBookingResponse(d))
	}
	return out
}
