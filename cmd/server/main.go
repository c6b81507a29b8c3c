package main

import (
	"log"
	"net/http"

	_ "carzone/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carzone/internal/auth"
	"carzone/internal/cache"
	"carzone/internal/config"
	"carzone/internal/db"
	"carzone/internal/handler"
	"carzone/internal/model"
	"carzone/internal/repository"
	"carzone/internal/router"
	"carzone/internal/service"
)

// @title Carzone Catalog API
// @version 1.0
// @description Vehicle catalog API with JWT authentication and role-gated administration.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Fuel{},
		&model.Mark{},
		&model.VehicleType{},
		&model.Transmission{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	fuelRepo := repository.NewAttributeRepository[model.Fuel](gormDB)
	markRepo := repository.NewAttributeRepository[model.Mark](gormDB)
	typeRepo := repository.NewAttributeRepository[model.VehicleType](gormDB)
	transmissionRepo := repository.NewAttributeRepository[model.Transmission](gormDB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, fuelRepo, markRepo, typeRepo, transmissionRepo, cacheClient)
	filterService := service.NewFilterService(fuelRepo, markRepo, typeRepo, transmissionRepo)
	fuelService := service.NewAttributeService[model.Fuel, *model.Fuel](fuelRepo, "Fuel")
	markService := service.NewAttributeService[model.Mark, *model.Mark](markRepo, "Mark")
	typeService := service.NewAttributeService[model.VehicleType, *model.VehicleType](typeRepo, "Type")
	transmissionService := service.NewAttributeService[model.Transmission, *model.Transmission](transmissionRepo, "Transmission")

	// Handlers
	h := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Product:      handler.NewProductHandler(productService),
		Filter:       handler.NewFilterHandler(filterService),
		Fuel:         handler.NewAttributeHandler(fuelService, "Fuel"),
		Mark:         handler.NewAttributeHandler(markService, "Mark"),
		Type:         handler.NewAttributeHandler(typeService, "Type"),
		Transmission: handler.NewAttributeHandler(transmissionService, "Transmission"),
	}

	router.Register(e, cfg, jwtService, h)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
