package config

import (
	"log"
	"os"

	"github.com/nanaboakye-dev/tasty-bites/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

func init() {
	_ = godotenv.Load()
	JWTSecret = []byte(GetEnv("JWT_SECRET", "tasty_bites_super_secret_2024"))

	// Money fields render as JSON numbers, matching the original API payloads
	decimal.MarshalJSONWithoutQuotes = true
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "tasty_bites.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs schema auto-migration for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Worker{},
		&models.Schedule{},
	)
}
