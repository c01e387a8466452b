package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	Email     EmailConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	Log     LogRotation
}

// LogRotation is handed to lumberjack as is.
type LogRotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	MaxConns int32
	MinConns int32
	// MaxConnLifetime recycles pooled connections, e.g. across a managed database failover
	MaxConnLifetime time.Duration
	ConnectTimeout  time.Duration

	AutoSchema bool
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	SessionTTL   time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	To       string
	Timeout  time.Duration
}

// Configured reports whether SMTP credentials are present.
func (c EmailConfig) Configured() bool {
	return c.User != "" && c.Password != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "studio-site")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("LOG_COMPRESS", true)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("DB_CONN_LIFETIME_MINUTES", 30)
	v.SetDefault("DB_CONNECT_TIMEOUT_SECONDS", 5)
	v.SetDefault("DB_AUTO_SCHEMA", true)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM_NAME", "Studio Booking")
	v.SetDefault("MAIL_TIMEOUT_SECONDS", 30)
	v.SetDefault("RATE_LIMIT_RPS", 1)
	v.SetDefault("RATE_LIMIT_BURST", 5)
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
		// no .env file, environment only
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
			Log: LogRotation{
				MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
				MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
				MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
				Compress:   v.GetBool("LOG_COMPRESS"),
			},
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			Name:            v.GetString("DB_NAME"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASS"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt32("DB_MAX_CONNS"),
			MinConns:        v.GetInt32("DB_MIN_CONNS"),
			MaxConnLifetime: time.Duration(v.GetInt("DB_CONN_LIFETIME_MINUTES")) * time.Minute,
			ConnectTimeout:  time.Duration(v.GetInt("DB_CONNECT_TIMEOUT_SECONDS")) * time.Second,
			AutoSchema:      v.GetBool("DB_AUTO_SCHEMA"),
		},
		Admin: AdminConfig{
			Username:     v.GetString("ADMIN_USERNAME"),
			Password:     v.GetString("ADMIN_PASSWORD"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			SessionTTL:   time.Duration(v.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
		Email: EmailConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			FromName: v.GetString("MAIL_FROM_NAME"),
			To:       v.GetString("MAIL_TO"),
			Timeout:  time.Duration(v.GetInt("MAIL_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.Email.To == "" {
		config.Email.To = config.Email.User
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
