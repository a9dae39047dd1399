package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	UploadDir  string
	GinMode    string
	Port       string
}

func Load() *Config {
	// Optional .env for local development
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "onboarding"),
		DBPassword: getEnv("DB_PASSWORD", "onboarding"),
		DBName:     getEnv("DB_NAME", "hr_onboarding"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Port:       getEnv("PORT", "8000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
