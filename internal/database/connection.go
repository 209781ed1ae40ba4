package database

import (
	"fmt"
	"log"
	"water_store/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

// AutoMigrate creates or updates the schema for every entity. Foreign keys
// on orders are RESTRICT so referenced catalog rows cannot be hard-deleted;
// deactivation is the supported removal path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.State{},
		&models.Branch{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
}
