package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/db"
	"globetrotter/internal/model"
	"globetrotter/internal/repository"
)

// Matches the cost the auth service registers users with.
const bcryptCost = 8

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Role{}, &model.User{}, &model.FavoriteCountry{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Seed the fixed role catalog
	if err := roleRepo.EnsureCatalog(ctx); err != nil {
		log.Fatalf("Failed to seed role catalog: %v", err)
	}
	log.Printf("Role catalog seeded: %v", model.CatalogNames())

	// Optionally provision an initial admin account
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		log.Println("ADMIN_USERNAME not set, skipping admin account")
		log.Println("Seed completed successfully!")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set together with ADMIN_USERNAME")
	}

	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin account %q already exists, skipping", username)
		log.Println("Seed completed successfully!")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	adminRole, err := roleRepo.FindByName(ctx, model.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to resolve admin role: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Roles:        []model.Role{*adminRole},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Admin account %q created", username)
	log.Println("Seed completed successfully!")
}
