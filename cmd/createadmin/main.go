package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/carolinadevia11/Bridge/internal/infrastructure/database"
	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/adapter"
)

// Bootstraps (or refreshes) the back-office admin account.
func main() {
	email := flag.String("email", "admin@gmail.com", "admin account email")
	password := flag.String("password", "", "admin account password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("createadmin: -password is required")
	}
	if len(*password) < 8 {
		log.Fatal("createadmin: password must be at least 8 characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u, err := auth.NewUser("Admin", "User", *email, string(hash))
	if err != nil {
		log.Fatalf("invalid admin account: %v", err)
	}
	u.Role = auth.RoleAdmin

	repo := adapter.NewPgUserRepository(pool)
	id, err := repo.UpsertAdmin(ctx, *u)
	if err != nil {
		log.Fatalf("failed to upsert admin: %v", err)
	}

	log.Printf("admin account ready: email=%s id=%s", u.Email, id)
}
