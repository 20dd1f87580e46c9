package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/config"
	"github.com/iliyamo/hotel-booking-api/internal/database"
	"github.com/iliyamo/hotel-booking-api/internal/handler"
	"github.com/iliyamo/hotel-booking-api/internal/queue"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
	"github.com/iliyamo/hotel-booking-api/internal/router"
	"github.com/iliyamo/hotel-booking-api/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response caching disabled")
	}

	guestRepo := repository.NewGuestRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	svc := service.NewBookingService(db, guestRepo, roomRepo, bookingRepo)

	// Audit consumer runs for the lifetime of the process and
	// reconnects on its own when the broker goes away.
	go queue.StartAuditConsumer()

	e := echo.New()
	e.Validator = handler.NewValidator()
	router.RegisterRoutes(e,
		handler.NewGuestHandler(guestRepo),
		handler.NewRoomHandler(roomRepo),
		handler.NewBookingHandler(svc),
		tokenRepo, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
