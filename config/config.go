package config

import (
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds everything the server reads from the environment.
// JWT_SECRET has no default on purpose: startup fails when it is missing.
type Config struct {
	Port       string `validate:"required"`
	JWTSecret  string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSSLMode  string

	// DocviewPath selects the Badger-backed document view. When empty the
	// JSON-file store at DocviewFile is used instead.
	DocviewPath string
	DocviewFile string

	UploadDir string
	LogLevel  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DocviewPath: os.Getenv("DOCVIEW_PATH"),
		DocviewFile: getEnv("DOCVIEW_FILE", "docview.json"),
		UploadDir:   getEnv("UPLOAD_DIR", "public"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
