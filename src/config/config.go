package config

import (
	"log"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/username/taxsarthi/backend/src/limits"
)

// AppConfig holds all configuration for the engine. The only domain
// setting is the active tax year, which selects the statutory limit
// table; everything else is ambient.
type AppConfig struct {
	TaxYear  string
	LogLevel string
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
func LoadConfig() {
	// 1. Try loading from the current directory (standard behavior)
	errEnv := godotenv.Load()

	// 2. If not found, try loading from the parent directory (common when running from /backend)
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables.")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	taxYear := getEnv("TAX_YEAR", limits.DefaultYear)
	if !slices.Contains(limits.SupportedYears(), taxYear) {
		log.Printf("WARNING: No statutory limit table for TAX_YEAR '%s'. Using default: %s", taxYear, limits.DefaultYear)
		taxYear = limits.DefaultYear
	}

	Cfg = &AppConfig{
		TaxYear:  taxYear,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	log.Printf("Configuration loaded: TaxYear=%s, LogLevel=%s", Cfg.TaxYear, Cfg.LogLevel)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
