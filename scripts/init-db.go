package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"water_store/internal/config"
	"water_store/internal/database"
	"water_store/internal/models"
	"water_store/internal/repository"
	"water_store/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Order{},
		&models.ProductImage{},
		&models.Product{},
		&models.Category{},
		&models.Branch{},
		&models.State{},
		&models.ContactMessage{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default super admin user
	fmt.Println("Creating default super admin user...")
	adminRepo := repository.NewAdminUserRepository(db)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)

	_, err = authService.RegisterSuperAdmin("admin", "admin@water.store", "admin123")
	if err != nil {
		log.Printf("Warning: Failed to create super admin user: %v", err)
	} else {
		fmt.Println("Super admin user created successfully")
		fmt.Println("Username: admin")
		fmt.Println("Password: admin123")
	}

	// Seed demo catalog data
	fmt.Println("Creating demo catalog data...")

	riyadh := models.State{Name: "Riyadh", Code: "RUH", IsActive: true}
	jeddah := models.State{Name: "Jeddah", Code: "JED", IsActive: true}
	if err := db.Create(&riyadh).Error; err != nil {
		log.Fatal("Failed to create states:", err)
	}
	if err := db.Create(&jeddah).Error; err != nil {
		log.Fatal("Failed to create states:", err)
	}

	branches := []models.Branch{
		{StateID: riyadh.ID, Name: "Olaya Branch", Address: "Olaya St, Riyadh", Phone: "+966500000001", IsActive: true},
		{StateID: riyadh.ID, Name: "Malaz Branch", Address: "Malaz District, Riyadh", Phone: "+966500000002", IsActive: true},
		{StateID: jeddah.ID, Name: "Corniche Branch", Address: "Corniche Rd, Jeddah", Phone: "+966500000003", IsActive: true},
	}
	if err := db.Create(&branches).Error; err != nil {
		log.Fatal("Failed to create branches:", err)
	}

	bottled := models.Category{Name: "Bottled Water", SortOrder: 1, IsActive: true}
	gallons := models.Category{Name: "Water Gallons", SortOrder: 2, IsActive: true}
	if err := db.Create(&bottled).Error; err != nil {
		log.Fatal("Failed to create categories:", err)
	}
	if err := db.Create(&gallons).Error; err != nil {
		log.Fatal("Failed to create categories:", err)
	}

	products := []models.Product{
		{
			CategoryID:     bottled.ID,
			Name:           "Pure Still Water 330ml (Pack of 40)",
			SKU:            "WTR-330-40",
			BadgeText:      "Best Seller",
			Description:    "Low-sodium still water in 330ml bottles, packed 40 per carton.",
			Price:          decimal.NewFromFloat(24.00),
			TrackInventory: true,
			StockQty:       120,
			SortOrder:      1,
			IsActive:       true,
			Images: []models.ProductImage{
				{ImageURL: "/static/images/still-330.jpg", AltText: "330ml bottle carton", IsPrimary: true},
			},
		},
		{
			CategoryID:     bottled.ID,
			Name:           "Pure Still Water 600ml (Pack of 24)",
			SKU:            "WTR-600-24",
			Description:    "600ml bottles for home and office, packed 24 per carton.",
			Price:          decimal.NewFromFloat(22.00),
			TrackInventory: true,
			StockQty:       80,
			SortOrder:      2,
			IsActive:       true,
		},
		{
			CategoryID:     gallons.ID,
			Name:           "Refillable Gallon 19L",
			SKU:            "GAL-19L",
			Description:    "19 liter refillable gallon with doorstep exchange.",
			Price:          decimal.NewFromFloat(210.00),
			TrackInventory: false,
			SortOrder:      1,
			IsActive:       true,
			Images: []models.ProductImage{
				{ImageURL: "/static/images/gallon-19l.jpg", AltText: "19L gallon", IsPrimary: true},
				{ImageURL: "/static/images/gallon-19l-side.jpg", AltText: "19L gallon side view"},
			},
		},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to create products:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
