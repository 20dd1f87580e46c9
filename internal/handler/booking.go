package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/model"
	"github.com/iliyamo/hotel-booking-api/internal/queue"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
	"github.com/iliyamo/hotel-booking-api/internal/service"
)

// BookingHandler exposes the booking endpoints.  All validation of
// referenced entities, date ordering and the overlap rule lives in
// the booking service; the handler maps its errors onto HTTP
// responses and emits lifecycle events after successful writes.
type BookingHandler struct {
	Service *service.BookingService

	// publish emits a lifecycle event after a successful write.
	// Failures are ignored; event delivery must never fail a request.
	publish func(context.Context, queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler wired to the RabbitMQ
// publisher.  The service must be non-nil.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, publish: queue.PublishBookingEvent}
}

// bookingRequest is the request body for creating and updating
// bookings.  Guests and rooms are referenced by natural key.
type bookingRequest struct {
	GuestEmail string `json:"guest_email" validate:"required,email"`
	RoomNumber int    `json:"room_number" validate:"required,gt=0"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
}

// List handles GET /bookings/.
func (h *BookingHandler) List(c echo.Context) error {
	details, err := h.Service.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toBookingResponses(details))
}

// ListFiltered handles GET /bookings/:check_in/:check_out/.  It
// returns bookings fully contained in the bound range.  Both bounds
// are compared as parsed dates, never as raw strings.
func (h *BookingHandler) ListFiltered(c echo.Context) error {
	lo, err := parseDate(c.Param("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}
	hi, err := parseDate(c.Param("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}
	if hi.Before(lo) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out date is before check_in date."})
	}
	details, err := h.Service.ListWithin(c.Request().Context(), lo, hi)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toBookingResponses(details))
}

// ListByGuest handles GET /bookings/guest/:email/.  An unknown email
// yields an empty list.
func (h *BookingHandler) ListByGuest(c echo.Context) error {
	details, err := h.Service.ListByGuest(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toBookingResponses(details))
}

// Create handles POST /bookings/.  Validation, conflict and
// not-found failures all collapse to 400 with a message naming the
// cause.
func (h *BookingHandler) Create(c echo.Context) error {
	body, checkIn, checkOut, err := h.bindBookingRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	detail, err := h.Service.Create(c.Request().Context(), body.GuestEmail, body.RoomNumber, checkIn, checkOut)
	if err != nil {
		var booked *service.RoomBookedError
		switch {
		case errors.Is(err, repository.ErrGuestNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Guest not found."})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Room not found."})
		case errors.Is(err, service.ErrInvalidRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out date is before check_in date."})
		case errors.As(err, &booked):
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": booked.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	h.emit(c, queue.EventBookingCreated, *detail)
	return c.JSON(http.StatusCreated, toBookingResponse(*detail))
}

// Update handles PUT /bookings/:id.  The operation is a full replace
// of guest, room and both dates.  Missing booking, guest or room give
// 404; bad dates or an overlap give 400.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	body, checkIn, checkOut, err := h.bindBookingRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	detail, err := h.Service.Update(c.Request().Context(), id, body.GuestEmail, body.RoomNumber, checkIn, checkOut)
	if err != nil {
		var booked *service.RoomBookedError
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Booking not found."})
		case errors.Is(err, repository.ErrGuestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Guest not found."})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Room not found."})
		case errors.Is(err, service.ErrInvalidRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out date is before check_in date."})
		case errors.As(err, &booked):
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": booked.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	h.emit(c, queue.EventBookingUpdated, *detail)
	return c.JSON(http.StatusOK, toBookingResponse(*detail))
}

// Delete handles DELETE /bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Booking not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if h.publish != nil {
		_ = h.publish(c.Request().Context(), queue.BookingEvent{
			Event:      queue.EventBookingDeleted,
			BookingID:  id,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// bindBookingRequest binds and validates the shared booking body and
// parses both dates.
func (h *BookingHandler) bindBookingRequest(c echo.Context) (bookingRequest, time.Time, time.Time, error) {
	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return body, time.Time{}, time.Time{}, errors.New("invalid request body")
	}
	if err := c.Validate(&body); err != nil {
		return body, time.Time{}, time.Time{}, err
	}
	checkIn, err := parseDate(body.CheckIn)
	if err != nil {
		return body, time.Time{}, time.Time{}, errors.New("Invalid date format. Use YYYY-MM-DD.")
	}
	checkOut, err := parseDate(body.CheckOut)
	if err != nil {
		return body, time.Time{}, time.Time{}, errors.New("Invalid date format. Use YYYY-MM-DD.")
	}
	return body, checkIn, checkOut, nil
}

// emit publishes a lifecycle event for a booking write.
func (h *BookingHandler) emit(c echo.Context, event string, d repository.BookingDetail) {
	if h.publish == nil {
		return
	}
	_ = h.publish(c.Request().Context(), queue.BookingEvent{
		Event:      event,
		BookingID:  d.ID,
		GuestEmail: d.GuestEmail,
		RoomNumber: d.RoomNumber,
		CheckIn:    d.CheckIn.Format(model.DateLayout),
		CheckOut:   d.CheckOut.Format(model.DateLayout),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
