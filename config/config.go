package config

import (
	"fmt"
	"log"
	"os"

	"github.com/r-4-e/SwasthAI/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv loads a local .env file if one exists. The process environment
// wins when both are present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

// OpenDB opens the relational store and migrates the schema. SQLite is the
// default; set DB_DRIVER=postgres to use the Postgres DSN variables instead.
// The returned handle is passed into services explicitly — there is no
// package-level singleton.
func OpenDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "swasthai_v2.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyLog{},
		&models.FoodEntry{},
		&models.WeightLog{},
		&models.NutritionItem{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
