package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-profile-backend/config"
	"go-profile-backend/internal/seeder"
	"go-profile-backend/pkg/database"
	"go-profile-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner := seeder.Runner{
		Seeders: []seeder.Seeder{
			seeder.SkillsSeeder{},
			seeder.CountriesSeeder{},
		},
	}

	if err := runner.Run(ctx, dbPool); err != nil {
		logger.Log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Seeding completed")
}
