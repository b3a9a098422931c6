package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"meal-planner-backend/internal/config"
	"meal-planner-backend/internal/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	catalogFile := flag.String("file", "", "seed catalog YAML to load instead of the built-in one")
	flag.Parse()

	_ = godotenv.Load()
	log.Println("Loading initial catalog...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data, err := loadCatalog(*catalogFile)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	applied, err := database.SeedData(db, data)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if !applied {
		log.Printf("Catalog version %s already applied, nothing to do", data.Version)
		return
	}
	log.Printf("Catalog version %s loaded: %d products, %d meal groups, %d dishes",
		data.Version, len(data.Products), len(data.MealGroups), len(data.Dishes))
}

func loadCatalog(path string) (*database.CatalogData, error) {
	if path == "" {
		return database.LoadCatalogData()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return database.ParseCatalogData(raw)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
