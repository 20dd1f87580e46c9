// Command tokenctl mints and revokes the opaque API tokens checked by
// the Authorization middleware.  The plain token is printed exactly
// once; only its hash is stored.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-booking-api/internal/config"
	"github.com/iliyamo/hotel-booking-api/internal/database"
	"github.com/iliyamo/hotel-booking-api/internal/middleware"
	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

func main() {
	label := flag.String("label", "", "free-text note identifying the token holder")
	revoke := flag.String("revoke", "", "plain token to revoke instead of minting a new one")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tokens := repository.NewTokenRepo(db)

	if *revoke != "" {
		if err := tokens.RevokeByHash(ctx, middleware.HashToken(*revoke)); err != nil {
			log.Fatalf("revoke: %v", err)
		}
		fmt.Println("token revoked")
		return
	}

	token, err := randomToken(32)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if err := tokens.Store(ctx, middleware.HashToken(token), *label); err != nil {
		log.Fatalf("store: %v", err)
	}
	fmt.Println(token)
}

// randomToken generates a random hexadecimal string of n bytes.
func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
