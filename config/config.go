package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`
	Database  DatabaseConfig            `mapstructure:"database"`
	Redis     RedisConfig               `mapstructure:"redis"`
	Log       LogConfig                 `mapstructure:"log"`
	Storage   StorageConfig             `mapstructure:"storage"`
	Gateway   GatewayConfig             `mapstructure:"gateway"`
	RateLimit RateLimitConfig           `mapstructure:"ratelimit"`
	Merchants map[string]MerchantConfig `mapstructure:"merchants" validate:"dive"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode         string `mapstructure:"mode" validate:"oneof=debug release test"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// DialTimeout bounds connection establishment; zero keeps the client default.
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// StorageConfig selects the persistence adapter.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres memory"`
	// Migrate applies the embedded schema migrations on startup (postgres only).
	Migrate bool `mapstructure:"migrate"`
}

// GatewayConfig identifies this gateway integration.
type GatewayConfig struct {
	// Name is the gateway name payments of this integration carry.
	Name string `mapstructure:"name" validate:"required"`
	// ModificationQueue is the Redis list outbound modification requests are pushed to.
	ModificationQueue string `mapstructure:"modification_queue" validate:"required"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit" validate:"gt=0"`
	Window  time.Duration `mapstructure:"window" validate:"gte=1s"`
}

// MerchantConfig is the gateway account bound to one payment method code.
type MerchantConfig struct {
	MerchantAccount string `mapstructure:"merchant_account" validate:"required"`
	HMACKey         string `mapstructure:"hmac_key" validate:"omitempty,hexadecimal"`
	Username        string `mapstructure:"username" validate:"required"`
	PasswordHash    string `mapstructure:"password_hash" validate:"required,startswith=$argon2id$"`
	CaptureMode     string `mapstructure:"capture_mode" validate:"oneof=automatic manual"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ANR_ (Adyen Notification Reconciler).
// Nested keys use underscore: ANR_DATABASE_HOST, ANR_GATEWAY_NAME, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "adyen_notifications")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.migrate", true)
	v.SetDefault("gateway.name", "adyen")
	v.SetDefault("gateway.modification_queue", "adyen:modifications")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 600)
	v.SetDefault("ratelimit.window", "1m")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ANR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ANR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
