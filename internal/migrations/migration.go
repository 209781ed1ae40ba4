package migrations

import (
	"log"

	"gorm.io/gorm"

	"water_store/internal/database"
	"water_store/internal/repository"
	"water_store/internal/services"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB, jwtSecret string) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := createDefaultData(db, jwtSecret); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the first super admin account. It is a no-op once
// one exists, so restarting the server never touches real accounts.
func createDefaultData(db *gorm.DB, jwtSecret string) error {
	adminRepo := repository.NewAdminUserRepository(db)
	authService := services.NewAuthService(adminRepo, jwtSecret)

	user, err := authService.RegisterSuperAdmin("admin", "admin@water.store", "admin123")
	if err == services.ErrSuperAdminExists {
		log.Println("Super admin user already exists")
		return nil
	}
	if err != nil {
		return err
	}

	log.Println("Super admin user created successfully")
	log.Printf("Username: %s", user.Username)
	log.Println("Password: admin123")
	return nil
}
