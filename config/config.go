package config

import (
	"log"
	"os"

	"restaurant-pos-api/billing"
	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))

// DefaultTaxRate applies to orders that do not supply a tax_rate override.
var DefaultTaxRate = loadTaxRate()

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadTaxRate() decimal.Decimal {
	raw := getEnv("DEFAULT_TAX_RATE", "0.09")
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Printf("Invalid DEFAULT_TAX_RATE %q, falling back to %s", raw, billing.DefaultTaxRate)
		return billing.DefaultTaxRate
	}
	return rate
}

// Open connects to the database at path and runs migrations. Used by InitDB
// and by tests that need an isolated database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Staff{},
		&models.Waiter{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Receipt{},
	)
	if err != nil {
		return nil, err
	}

	// Backstop for the receipt-per-order invariant: even if two transactions
	// both pass the pre-insert check, only one insert can succeed.
	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_receipts_active_order
		 ON receipts(order_id) WHERE is_deleted = 0`,
	).Error
	if err != nil {
		return nil, err
	}

	return db, nil
}

func InitDB() {
	var err error
	DB, err = Open(getEnv("POS_DB_PATH", "restaurant_pos.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated successfully")
}
