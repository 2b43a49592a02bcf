package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"barberbook/internal/database"
	"barberbook/internal/repository"
)

// Deletes expired password reset tokens. Meant to run from cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "barberbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewResetTokenRepository(db)
	deleted, err := repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("token_cleanup deleted=%d", deleted)
}
