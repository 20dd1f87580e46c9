package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/model"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// GuestHandler exposes CRUD endpoints for guests.
type GuestHandler struct {
	Guests *repository.GuestRepo
}

// NewGuestHandler constructs a GuestHandler and panics if the
// repository is nil.
func NewGuestHandler(guests *repository.GuestRepo) *GuestHandler {
	if guests == nil {
		panic("nil repository passed to NewGuestHandler")
	}
	return &GuestHandler{Guests: guests}
}

// guestRequest is the request body for creating and updating guests.
type guestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=16"`
}

// List handles GET /guests/.
func (h *GuestHandler) List(c echo.Context) error {
	guests, err := h.Guests.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, guests)
}

// Create handles POST /guests/.
func (h *GuestHandler) Create(c echo.Context) error {
	var body guestRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	guest := model.Guest{FirstName: body.FirstName, LastName: body.LastName, Email: body.Email, Phone: body.Phone}
	if err := h.Guests.Create(c.Request().Context(), &guest); err != nil {
		if isDuplicateEntry(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, guest)
}

// GetByID handles GET /guests/:id/.
func (h *GuestHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest id"})
	}
	guest, err := h.Guests.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrGuestNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, guest)
}

// GetByEmail handles GET /guests/email/:email/.
func (h *GuestHandler) GetByEmail(c echo.Context) error {
	guest, err := h.Guests.GetByEmail(c.Request().Context(), c.Param("email"))
	if errors.Is(err, repository.ErrGuestNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, guest)
}

// Update handles PUT /guests/:id/.  The update is a full replace of
// every field.
func (h *GuestHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest id"})
	}
	var body guestRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	guest := model.Guest{ID: id, FirstName: body.FirstName, LastName: body.LastName, Email: body.Email, Phone: body.Phone}
	if err := h.Guests.Update(c.Request().Context(), &guest); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
		}
		if isDuplicateEntry(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, guest)
}

// Delete handles DELETE /guests/:id/.  All of the guest's bookings
// are removed by cascade.
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest id"})
	}
	if err := h.Guests.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
