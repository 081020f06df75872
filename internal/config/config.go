package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Inventory InventoryConfig `mapstructure:"inventory"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Server    ServerConfig    `mapstructure:"server"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

// InventoryConfig holds the inventory file location and stock rules
type InventoryConfig struct {
	File              string `mapstructure:"file" validate:"required"`
	LowStockThreshold int    `mapstructure:"low_stock_threshold" validate:"min=0"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host      string  `mapstructure:"host"`
	Port      int     `mapstructure:"port" validate:"min=1,max=65535"`
	RateLimit float64 `mapstructure:"rate_limit" validate:"gt=0"`
	RateBurst int     `mapstructure:"rate_burst" validate:"min=1"`
	// JWTSecret enables bearer token checks on mutating routes when set.
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// DatabaseConfig holds the optional Postgres movement log connection
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// WatchConfig holds file watcher configuration
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Addr returns the address the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var validate = validator.New()

// Load reads configuration from defaults, an optional .env file, environment
// variables and, when path is not empty, a config file.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvVars(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its field rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("invalid configuration: watch debounce cannot be negative")
	}
	if cfg.Server.TokenTTL < 0 {
		return fmt.Errorf("invalid configuration: token ttl cannot be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inventory.file", "inventory.json")
	v.SetDefault("inventory.low_stock_threshold", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 5)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.token_ttl", "24h")

	v.SetDefault("database.url", "")

	v.SetDefault("watch.debounce", "250ms")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("inventory.file", "INVENTORY_FILE")
	v.BindEnv("inventory.low_stock_threshold", "LOW_STOCK_THRESHOLD")

	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.format", "LOG_FORMAT")

	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.rate_limit", "RATE_LIMIT")
	v.BindEnv("server.rate_burst", "RATE_BURST")
	v.BindEnv("server.jwt_secret", "JWT_SECRET")
	v.BindEnv("server.token_ttl", "TOKEN_TTL")

	v.BindEnv("database.url", "DATABASE_URL")

	v.BindEnv("watch.debounce", "WATCH_DEBOUNCE")
}
