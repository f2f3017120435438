package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "QUOTE"

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether a database was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// DSN returns the key=value connection string used by the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MapsConfig holds the mapping provider credential and transport settings.
type MapsConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Region  string
}

// PricingConfig holds pricing defaults.
type PricingConfig struct {
	DefaultFeePerKm float64
	FreeDeliveryKm  float64
}

// KafkaConfig holds event publishing settings. Publishing is off without brokers.
type KafkaConfig struct {
	Brokers []string
}

// RedisConfig holds rate limiter storage settings. Rate limiting is off without an address.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServiceConfig holds all configuration for the quote service.
type ServiceConfig struct {
	Port               string
	AppEnv             string
	Maps               MapsConfig
	Pricing            PricingConfig
	DBConfig           DatabaseConfig
	KafkaConfig        KafkaConfig
	RedisConfig        RedisConfig
	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// Load reads an optional .env file and then QUOTE_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The unprefixed names match what the web frontend already uses.
	_ = v.BindEnv("MAPS_API_KEY", envPrefix+"_MAPS_API_KEY", "GOOGLE_MAPS_API_KEY")

	v.SetDefault("SERVICE_PORT", ":8004")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("MAPS_TIMEOUT", "10s")
	v.SetDefault("MAPS_REGION", "ug")
	v.SetDefault("DEFAULT_FEE_PER_KM", 2000)
	v.SetDefault("FREE_DELIVERY_KM", 5)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "quote")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	return v
}

func fromViper(v *viper.Viper) (*ServiceConfig, error) {
	cfg := &ServiceConfig{
		Port:   normalisePort(v.GetString("SERVICE_PORT")),
		AppEnv: v.GetString("APP_ENV"),
		Maps: MapsConfig{
			APIKey:  v.GetString("MAPS_API_KEY"),
			BaseURL: v.GetString("MAPS_BASE_URL"),
			Timeout: v.GetDuration("MAPS_TIMEOUT"),
			Region:  v.GetString("MAPS_REGION"),
		},
		Pricing: PricingConfig{
			DefaultFeePerKm: v.GetFloat64("DEFAULT_FEE_PER_KM"),
			FreeDeliveryKm:  v.GetFloat64("FREE_DELIVERY_KM"),
		},
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
		},
		RedisConfig: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ServiceConfig) validate() error {
	if c.Maps.APIKey == "" {
		return errors.New("QUOTE_MAPS_API_KEY (or GOOGLE_MAPS_API_KEY) is required")
	}
	if c.Maps.Timeout <= 0 {
		return errors.New("QUOTE_MAPS_TIMEOUT must be a positive duration")
	}
	if c.Pricing.DefaultFeePerKm <= 0 {
		return errors.New("QUOTE_DEFAULT_FEE_PER_KM must be positive")
	}
	if c.Pricing.FreeDeliveryKm <= 0 {
		return errors.New("QUOTE_FREE_DELIVERY_KM must be positive")
	}
	return nil
}

func normalisePort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
