package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Reconciliation
	GraceDays           int
	AutoAssignThreshold decimal.Decimal
	AutoAssignChannel   domain.Channel

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "60-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("GRACE_DAYS", 5)
	v.SetDefault("AUTO_ASSIGN_THRESHOLD", "100")
	v.SetDefault("AUTO_ASSIGN_CHANNEL", string(domain.ChannelM))
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		GraceDays:      v.GetInt("GRACE_DAYS"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.GraceDays < 0 {
		return nil, fmt.Errorf("GRACE_DAYS must not be negative, got %d", cfg.GraceDays)
	}

	threshold, err := decimal.NewFromString(v.GetString("AUTO_ASSIGN_THRESHOLD"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_ASSIGN_THRESHOLD: %w", err)
	}
	if threshold.IsNegative() {
		return nil, fmt.Errorf("AUTO_ASSIGN_THRESHOLD must not be negative, got %s", threshold.String())
	}
	cfg.AutoAssignThreshold = threshold

	ch, ok := domain.ParseChannel(v.GetString("AUTO_ASSIGN_CHANNEL"))
	if !ok {
		return nil, fmt.Errorf("invalid AUTO_ASSIGN_CHANNEL %q", v.GetString("AUTO_ASSIGN_CHANNEL"))
	}
	cfg.AutoAssignChannel = ch

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
