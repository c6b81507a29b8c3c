package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"carzone/internal/auth"
	"carzone/internal/config"
	"carzone/internal/db"
	"carzone/internal/model"
	"carzone/internal/repository"
	"carzone/internal/service"
)

// Seeds the reference entities and an initial admin account so a fresh
// deployment has something to log into and filter on.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Fuel{},
		&model.Mark{},
		&model.VehicleType{},
		&model.Transmission{},
		&model.Product{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	seedAttributes(ctx, repository.NewAttributeRepository[model.Fuel](gormDB), "fuels", map[string]string{
		"Petrol":   "Gasoline combustion engine",
		"Diesel":   "Diesel combustion engine",
		"Electric": "Battery electric drivetrain",
		"Hybrid":   "Combined combustion and electric drivetrain",
	})
	seedAttributes(ctx, repository.NewAttributeRepository[model.Transmission](gormDB), "transmissions", map[string]string{
		"Manual":    "Driver operated gearbox",
		"Automatic": "Automatic gearbox",
	})
	seedAttributes(ctx, repository.NewAttributeRepository[model.VehicleType](gormDB), "types", map[string]string{
		"Sedan":     "Four door passenger car",
		"SUV":       "Sport utility vehicle",
		"Hatchback": "Compact car with rear hatch",
		"Pickup":    "Light truck with open cargo bed",
	})
	seedAttributes(ctx, repository.NewAttributeRepository[model.Mark](gormDB), "marks", map[string]string{
		"Toyota": "Toyota Motor Corporation",
		"Honda":  "Honda Motor Co.",
		"Ford":   "Ford Motor Company",
	})

	seedAdmin(ctx, gormDB)

	log.Println("Seed completed")
}

// seedAttributes inserts the given name/description pairs, skipping names
// that already exist so the script stays re-runnable.
func seedAttributes[T any, PT model.AttributePtr[T]](ctx context.Context, repo repository.AttributeRepository[T], table string, entries map[string]string) {
	existing, err := repo.All(ctx)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", table, err)
	}
	present := make(map[string]bool, len(existing))
	for i := range existing {
		present[PT(&existing[i]).Attr().Name] = true
	}

	created := 0
	for name, description := range entries {
		if present[name] {
			continue
		}
		entity := new(T)
		attr := PT(entity).Attr()
		attr.Name = name
		attr.Description = description
		if err := repo.Create(ctx, entity); err != nil {
			log.Fatalf("Failed to seed %s %q: %v", table, name, err)
		}
		created++
	}
	log.Printf("Seeded %d %s (%d already present)", created, table, len(existing))
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	userRepo := repository.NewUserRepository(gormDB)
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin account %s already present", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	jwtService := auth.NewJWTService(os.Getenv("JWT_SECRET"), 0)
	authService := service.NewAuthService(userRepo, jwtService)
	if _, err := authService.Register(ctx, service.RegisterInput{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     auth.RoleAdmin.String(),
	}); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.Printf("Seeded admin account %s", email)
}
