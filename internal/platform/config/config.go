package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port                 string
	IsProduction         bool
	DefaultCurrency      string
	EnableCache          bool
	CacheTTL             time.Duration
	RateLimit            string
	TransferCategoryName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_CURRENCY", "RUB")
	viper.SetDefault("ENABLE_CACHE", true)
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("TRANSFER_CATEGORY_NAME", "Transfer")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cacheTTLStr := viper.GetString("CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 60 * time.Second
		if cacheTTLStr != "" {
			log.Printf("Warning: Invalid value for CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.EnableCache = viper.GetBool("ENABLE_CACHE")
	cfg.CacheTTL = cacheTTL
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.TransferCategoryName = viper.GetString("TRANSFER_CATEGORY_NAME")

	return cfg, nil
}
