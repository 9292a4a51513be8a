package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Email  EmailConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for return archiving.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the GSTRLY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTRLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstrly")
	v.SetDefault("db.password", "gstrly_secret")
	v.SetDefault("db.name", "gstrly_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "gstrly")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstrly-returns")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@gstrly.in")
	v.SetDefault("email.from_name", "GSTRLY")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "GSTRLY_SERVER_PORT",
		"server.read_timeout":  "GSTRLY_SERVER_READ_TIMEOUT",
		"server.write_timeout": "GSTRLY_SERVER_WRITE_TIMEOUT",
		"server.environment":   "GSTRLY_SERVER_ENVIRONMENT",
		"db.host":              "GSTRLY_DB_HOST",
		"db.port":              "GSTRLY_DB_PORT",
		"db.user":              "GSTRLY_DB_USER",
		"db.password":          "GSTRLY_DB_PASSWORD",
		"db.name":              "GSTRLY_DB_NAME",
		"db.sslmode":           "GSTRLY_DB_SSLMODE",
		"db.max_open":          "GSTRLY_DB_MAX_OPEN",
		"db.max_idle":          "GSTRLY_DB_MAX_IDLE",
		"jwt.secret":           "GSTRLY_JWT_SECRET",
		"jwt.access_expiry":    "GSTRLY_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "GSTRLY_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "GSTRLY_JWT_ISSUER",
		"s3.region":            "GSTRLY_S3_REGION",
		"s3.bucket":            "GSTRLY_S3_BUCKET",
		"s3.endpoint":          "GSTRLY_S3_ENDPOINT",
		"s3.access_key":        "GSTRLY_S3_ACCESS_KEY",
		"s3.secret_key":        "GSTRLY_S3_SECRET_KEY",
		"s3.presign_expiry":    "GSTRLY_S3_PRESIGN_EXPIRY",
		"email.provider":       "GSTRLY_EMAIL_PROVIDER",
		"email.region":         "GSTRLY_EMAIL_REGION",
		"email.from_address":   "GSTRLY_EMAIL_FROM_ADDRESS",
		"email.from_name":      "GSTRLY_EMAIL_FROM_NAME",
		"cors.allowed_origins": "GSTRLY_CORS_ALLOWED_ORIGINS",
		"log.level":            "GSTRLY_LOG_LEVEL",
		"log.format":           "GSTRLY_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Comma-separated origins arrive as a single string through the env.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
