package services

import (
	"testing"

	"github.com/r-4-e/SwasthAI/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test a fresh in-memory database. The pool is
// pinned to one connection; a second connection to ":memory:" would see
// a different, empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyLog{},
		&models.FoodEntry{},
		&models.WeightLog{},
		&models.NutritionItem{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}
