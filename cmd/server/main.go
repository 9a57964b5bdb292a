package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "globetrotter/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"globetrotter/internal/auth"
	"globetrotter/internal/cache"
	"globetrotter/internal/config"
	"globetrotter/internal/db"
	"globetrotter/internal/handler"
	"globetrotter/internal/model"
	"globetrotter/internal/repository"
	"globetrotter/internal/router"
	"globetrotter/internal/service"
)

// @title Globetrotter API
// @version 1.0
// @description Authentication and favorite-countries API for the Globetrotter country browser.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey AccessToken
// @in header
// @name x-access-token
// @description Session token issued by /auth/signin.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.FavoriteCountry{},
			"user_roles",
			&model.User{},
			&model.Role{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.FavoriteCountry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Seed the fixed role catalog
	if err := roleRepo.EnsureCatalog(context.Background()); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtService, sessionStore)
	favoriteService := service.NewFavoriteService(favoriteRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// Register routes
	router.Register(e, cfg, authHandler, favoriteHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
