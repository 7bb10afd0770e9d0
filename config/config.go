package config

import (
	"fmt"
	"os"
	"strconv"

	"image-cms/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultExportLimit bounds export result sets; large enough to mean
// "everything" for realistic catalogs.
const DefaultExportLimit = 10000

type Config struct {
	HTTPPort    string
	GRPCPort    string
	ExportLimit int
}

func Load() Config {
	return Config{
		HTTPPort:    getEnv("PORT", "8080"),
		GRPCPort:    getEnv("GRPC_PORT", "50051"),
		ExportLimit: getEnvInt("EXPORT_LIMIT", DefaultExportLimit),
	}
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "image_cms"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(&models.Image{}, &models.ImageTag{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer in env, using default")
		return fallback
	}
	return n
}
