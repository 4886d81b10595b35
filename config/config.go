package config

import (
	"log"
	"os"

	"bbq-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs auth tokens — read from env or fallback.
var JWTSecret []byte

// LoadEnv reads .env when present, then resolves secrets from the
// environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "bbq_ordering_super_secret_2025"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "bbq_ordering.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema for every model. Split out so tests can migrate
// their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.OrderTracking{},
		&models.Invoice{},
		&models.InvoiceSequence{},
		&models.UserHistory{},
		&models.Reservation{},
		&models.ReservationItem{},
		&models.Article{},
		&models.JournalEntry{},
		&models.Feedback{},
	)
}
