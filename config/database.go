package config

import (
	"fmt"

	"github.com/Bgmi10/booking-engine-sub003/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

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

	err = DB.AutoMigrate(
		&models.Admin{},
		&models.BlacklistedToken{},
		&models.RatePolicy{},
		&models.Room{},
		&models.RoomRate{},
		&models.RateDatePrice{},
		&models.BulkOverrideLog{},
		&models.Booking{},
		&models.PaymentIntent{},
		&models.Charge{},
		&models.Refund{},
		&models.RoomOrder{},
		&models.RoomOrderItem{},
		&models.WeddingProposal{},
		&models.PaymentPlanInstallment{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
