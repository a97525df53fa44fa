package main

import (
	"context"
	"log"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/config"
	"gatekeeper/internal/db"
	"gatekeeper/internal/model"
	"gatekeeper/internal/repository"
)

// seedUser is a demo user definition for local development.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Age      int
	Country  string
	Gender   string
	Role     string
}

var seedUsers = []seedUser{
	{Name: "Alice Admin", Email: "alice@example.com", Password: "password123", Age: 34, Country: "FR", Gender: "female", Role: "admin"},
	{Name: "Bob User", Email: "bob@example.com", Password: "password123", Age: 28, Country: "DE", Gender: "male", Role: "user"},
	{Name: "Carol User", Email: "carol@example.com", Password: "password123", Age: 41, Country: "US", Gender: "female", Role: "user"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, s := range seedUsers {
		if _, err := repo.FindByEmail(ctx, s.Email); err == nil {
			skipped++
			continue
		}

		hash, err := auth.HashPassword(s.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", s.Email, err)
		}

		user := &model.User{
			Name:         s.Name,
			Email:        s.Email,
			Age:          s.Age,
			Country:      s.Country,
			Gender:       s.Gender,
			PasswordHash: hash,
			Role:         s.Role,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", s.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d created, %d skipped (already present)", created, skipped)
}
