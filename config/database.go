package config

import (
	"fmt"

	"github.com/vaporhouse-br/VaporHouse/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the database connection and runs migrations
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Orders use uuid primary keys generated in BeforeCreate hooks, but the
	// extension is still needed for uuid column defaults on older schemas.
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		panic(fmt.Sprintf("Failed to enable pgcrypto extension: %v", err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.UserOTP{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductFlavor{},
		&models.Banner{},
		&models.ShippingRate{},
		&models.CartItem{},
		&models.Discount{},
		&models.DiscountUsage{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
