package database

import (
	"fmt"

	"userpay-app/internal/domain/billing"
	"userpay-app/internal/domain/users"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects with the configured driver, migrates, and sets DB.
func InitDB(log *zap.Logger, driver, dsn string) {
	db, err := Open(driver, dsn)
	if err != nil {
		log.Fatal("❌ Failed to connect to database", zap.String("driver", driver), zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		log.Fatal("❌ AutoMigrate error", zap.Error(err))
	}

	DB = db
	log.Info("✅ Connected and migrated successfully", zap.String("driver", driver))
}

func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&billing.PaymentRecord{},
	)
}
