package main

import (
	"context"
	"log"
	"os"

	"github.com/r-4-e/SwasthAI/config"
	"github.com/r-4-e/SwasthAI/routes"
	"github.com/r-4-e/SwasthAI/services"
)

func main() {
	config.LoadEnv()

	db, err := config.OpenDB()
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := config.SeedNutritionDatabase(db); err != nil {
		log.Fatalf("failed to seed nutrition database: %v", err)
	}

	photos, err := services.NewPhotoArchive(context.Background())
	if err != nil {
		log.Printf("photo archive disabled: %v", err)
		photos = nil
	}

	r := routes.SetupRouter(routes.Deps{
		DB:       db,
		Identity: services.NewIdentityService(),
		Vision:   services.NewVisionService(),
		Hub:      services.NewRealtimeHub(),
		Photos:   photos,
	})

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
