package database

import (
	"fmt"
	"os"

	"unique-travel/logger"
	applicationModel "unique-travel/models/application"
	bookingModel "unique-travel/models/booking"
	couponModel "unique-travel/models/coupon"
	guideModel "unique-travel/models/guide"
	logModel "unique-travel/models/log"
	paymentModel "unique-travel/models/payment"
	storyModel "unique-travel/models/story"
	packageModel "unique-travel/models/tourpackage"
	userModel "unique-travel/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency stages
func autoMigrate() error {
	// Stage 1: identity and catalog models
	stage1Models := []interface{}{
		&userModel.User{},
		&packageModel.Package{},
		&guideModel.Guide{},
		&storyModel.Story{},
		&couponModel.Coupon{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&applicationModel.Application{},
		&bookingModel.Booking{},
		&paymentModel.Payment{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_tourist_email ON bookings(tourist_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking tourist_email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_guide_email ON bookings(guide_email)").Error; err != nil {
		return fmt.Errorf("failed to create booking guide_email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking status index: %w", err)
	}

	// Payment indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create payment booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)").Error; err != nil {
		return fmt.Errorf("failed to create payment status index: %w", err)
	}

	// Story indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_stories_author_email ON stories(author_email)").Error; err != nil {
		return fmt.Errorf("failed to create story author_email index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
