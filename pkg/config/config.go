package config

import (
	"fmt"
	"log"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	FixerAPIKey       string
	FixerBaseURL      string
	ReferenceCurrency domain.Currency
	RateLimit         string // ulule/limiter formatted rate, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("FIXER_API_KEY", "")
	viper.SetDefault("FIXER_BASE_URL", "https://api.apilayer.com")
	viper.SetDefault("REFERENCE_CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.FixerAPIKey = viper.GetString("FIXER_API_KEY")
	if cfg.FixerAPIKey == "" {
		log.Println("Warning: FIXER_API_KEY environment variable not set. Rate lookups will fail.")
	}
	cfg.FixerBaseURL = viper.GetString("FIXER_BASE_URL")

	referenceCurrency, err := domain.ParseCurrency(viper.GetString("REFERENCE_CURRENCY"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_CURRENCY: %w", err)
	}
	cfg.ReferenceCurrency = referenceCurrency

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
