package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	"webcall-server/internal/auth/processor"
	"webcall-server/internal/observability"

	"github.com/joho/godotenv"
)

// admin-token prints a bearer token for the admin routes.
func main() {
	subject := flag.String("subject", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	// Load environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	authProc := processor.New(os.Getenv("JWT_SECRET"), logger)
	token, err := authProc.GenerateJWTToken(context.Background(), *subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
