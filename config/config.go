package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the process settings read from the environment.
type Config struct {
	Port      string
	DSN       string
	JWTSecret string
	UploadDir string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:      os.Getenv("PORT"),
		DSN:       os.Getenv("DB_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: os.Getenv("UPLOAD_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	return cfg
}

// Open connects to the database. The returned handle owns the connection pool
// for the life of the process; pass it down, close it with Close.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Close tears down the connection pool behind the gorm handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
