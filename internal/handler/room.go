package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/model"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// RoomHandler exposes CRUD endpoints for rooms.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

// NewRoomHandler constructs a RoomHandler and panics if the
// repository is nil.
func NewRoomHandler(rooms *repository.RoomRepo) *RoomHandler {
	if rooms == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// roomRequest is the request body for creating and updating rooms.
// Price is a decimal string to preserve DECIMAL(10,2) precision.
type roomRequest struct {
	RoomNumber int    `json:"room_number" validate:"required,gt=0"`
	RoomType   string `json:"room_type" validate:"required,max=50"`
	Price      string `json:"price" validate:"required,numeric"`
}

// List handles GET /rooms/.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /rooms/.
func (h *RoomHandler) Create(c echo.Context) error {
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	room := model.Room{RoomNumber: body.RoomNumber, RoomType: body.RoomType, Price: body.Price}
	if err := h.Rooms.Create(c.Request().Context(), &room); err != nil {
		if isDuplicateEntry(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "room with this number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, room)
}

// GetByID handles GET /rooms/:id/.
func (h *RoomHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrRoomNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// GetByNumber handles GET /rooms/num/:room_number/.
func (h *RoomHandler) GetByNumber(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("room_number"))
	if err != nil || number <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	room, err := h.Rooms.GetByNumber(c.Request().Context(), number)
	if errors.Is(err, repository.ErrRoomNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// Update handles PUT /rooms/:id/.  The update is a full replace of
// every field.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	room := model.Room{ID: id, RoomNumber: body.RoomNumber, RoomType: body.RoomType, Price: body.Price}
	if err := h.Rooms.Update(c.Request().Context(), &room); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
		}
		if isDuplicateEntry(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "room with this number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /rooms/:id/.  All of the room's bookings are
// removed by cascade.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
