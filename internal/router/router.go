// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-booking-api/internal/config"
	"github.com/iliyamo/hotel-booking-api/internal/handler"
	"github.com/iliyamo/hotel-booking-api/internal/middleware"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// RegisterRoutes registers the public endpoints (health check and API
// schema) and the token-protected CRUD surface.  Every protected
// route runs through the token check, the rate limiter and the GET
// response cache; the latter two become no-ops when rdb is nil.
func RegisterRoutes(e *echo.Echo, guests *handler.GuestHandler, rooms *handler.RoomHandler, bookings *handler.BookingHandler, tokens *repository.TokenRepo, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/openapi.json", handler.OpenAPI)

	g := e.Group("",
		middleware.TokenAuth(tokens),
		middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
	)

	g.GET("/guests/", guests.List)
	g.POST("/guests/", guests.Create)
	g.GET("/guests/:id/", guests.GetByID)
	g.PUT("/guests/:id/", guests.Update)
	g.DELETE("/guests/:id/", guests.Delete)
	g.GET("/guests/email/:email/", guests.GetByEmail)

	g.GET("/rooms/", rooms.List)
	g.POST("/rooms/", rooms.Create)
	g.GET("/rooms/:id/", rooms.GetByID)
	g.PUT("/rooms/:id/", rooms.Update)
	g.DELETE("/rooms/:id/", rooms.Delete)
	g.GET("/rooms/num/:room_number/", rooms.GetByNumber)

	g.GET("/bookings/", bookings.List)
	g.POST("/bookings/", bookings.Create)
	// Static "guest" segment wins over the date parameters below.
	g.GET("/bookings/guest/:email/", bookings.ListByGuest)
	g.GET("/bookings/:check_in/:check_out/", bookings.ListFiltered)
	g.PUT("/bookings/:id", bookings.Update)
	g.DELETE("/bookings/:id", bookings.Delete)
}
