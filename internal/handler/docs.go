package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OpenAPI serves the hand-maintained API schema.  Like the health
// check it is reachable without a token.
func OpenAPI(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, []byte(openapiSpec))
}

const openapiSpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Hotel Booking API",
    "description": "CRUD API for guests, rooms and bookings. A room cannot have two bookings with overlapping date ranges (inclusive boundaries conflict). All endpoints except /healthz and /openapi.json require an opaque token in the Authorization header.",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "tokenAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "schemas": {
      "Guest": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "first_name": {"type": "string"},
          "last_name": {"type": "string"},
          "email": {"type": "string", "format": "email"},
          "phone": {"type": "string"}
        },
        "required": ["first_name", "last_name", "email", "phone"]
      },
      "Room": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "room_number": {"type": "integer"},
          "room_type": {"type": "string"},
          "price": {"type": "string", "description": "decimal string, e.g. 120.00"}
        },
        "required": ["room_number", "room_type", "price"]
      },
      "Booking": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "guest_email": {"type": "string", "format": "email"},
          "room_number": {"type": "integer"},
          "check_in": {"type": "string", "format": "date"},
          "check_out": {"type": "string", "format": "date"}
        }
      },
      "BookingRequest": {
        "type": "object",
        "properties": {
          "guest_email": {"type": "string", "format": "email"},
          "room_number": {"type": "integer"},
          "check_in": {"type": "string", "format": "date"},
          "check_out": {"type": "string", "format": "date"}
        },
        "required": ["guest_email", "room_number", "check_in", "check_out"]
      },
      "Error": {
        "type": "object",
        "properties": {
          "error": {"type": "string"},
          "detail": {"type": "string"}
        }
      }
    }
  },
  "security": [{"tokenAuth": []}],
  "paths": {
    "/guests/": {
      "get": {"summary": "List all guests", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create a guest", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error or duplicate email"}}}
    },
    "/guests/{id}/": {
      "get": {"summary": "Get a guest by id", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Replace a guest", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete a guest and cascade its bookings", "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
    },
    "/guests/email/{email}/": {
      "get": {"summary": "Get a guest by email", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/rooms/": {
      "get": {"summary": "List all rooms", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create a room", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error or duplicate number"}}}
    },
    "/rooms/{id}/": {
      "get": {"summary": "Get a room by id", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Replace a room", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete a room and cascade its bookings", "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
    },
    "/rooms/num/{room_number}/": {
      "get": {"summary": "Get a room by number", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/bookings/": {
      "get": {"summary": "List all bookings", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create a booking", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error, unknown guest or room, or overlapping dates"}}}
    },
    "/bookings/{check_in}/{check_out}/": {
      "get": {"summary": "List bookings fully contained in the date range", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad date format or reversed range"}}}
    },
    "/bookings/guest/{email}/": {
      "get": {"summary": "List bookings of one guest (empty list for unknown email)", "responses": {"200": {"description": "OK"}}}
    },
    "/bookings/{id}": {
      "put": {"summary": "Replace a booking (guest, room and both dates)", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad dates or overlapping range"}, "404": {"description": "Booking, guest or room not found"}}},
      "delete": {"summary": "Delete a booking", "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
    },
    "/healthz": {"get": {"summary": "Health check", "security": [], "responses": {"200": {"description": "OK"}}}},
    "/openapi.json": {"get": {"summary": "This schema", "security": [], "responses": {"200": {"description": "OK"}}}}
  }
}`
