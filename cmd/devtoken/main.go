// Command devtoken prints a signed bearer token for local development.
// It reads JWT_SECRET and JWT_ISSUER the same way the API server does.
//
//	go run ./cmd/devtoken -user 5b0c... -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/haulledger/backend/internal/auth"
)

func main() {
	user := flag.String("user", "", "user UUID to put in the subject claim (random when empty)")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			slog.Error("invalid -user", "error", err)
			os.Exit(1)
		}
		userID = parsed
	}

	token, err := auth.Issue(secret, os.Getenv("JWT_ISSUER"), userID, *ttl)
	if err != nil {
		slog.Error("issue token", "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "user_id: %s\n", userID)
	fmt.Println(token)
}
