package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSMTP     = "smtp"
	EmailProviderNone     = "none"
)

// app config, loaded once at startup
type Config struct {
	Port     string
	AppEnv   string
	MongoURI string
	DBName   string

	CORSOrigins []string

	EmailProvider  string
	SenderEmail    string
	SendGridAPIKey string
	SMTP           SMTPConfig

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	// set when the built-in admin/1234 pair is in effect
	DefaultAdminCredentials bool

	RedisAddr     string
	EventsChannel string
}

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// loads .env (if any) and then the process environment
func LoadConfig() (*Config, error) {
	// a missing .env is fine, real env vars always win
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URL")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URI")
	}

	config := &Config{
		Port:     getEnvOrDefault("PORT", "8000"),
		AppEnv:   getEnvOrDefault("APP_ENV", "production"),
		MongoURI: mongoURI,
		DBName:   getEnvOrDefault("DB_NAME", "test_platform"),

		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),

		EmailProvider:  strings.ToLower(getEnvOrDefault("EMAIL_PROVIDER", EmailProviderSendGrid)),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SMTP: SMTPConfig{
			Host: getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port: getEnvOrDefault("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
		},

		AdminUsername:     getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnvOrDefault("ADMIN_PASSWORD", "1234"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		DefaultAdminCredentials: os.Getenv("ADMIN_PASSWORD") == "" && os.Getenv("ADMIN_PASSWORD_HASH") == "",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		EventsChannel: getEnvOrDefault("EVENTS_CHANNEL", "test_response_submitted"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.MongoURI == "" {
		return errors.New("MONGO_URL is empty")
	}
	switch config.EmailProvider {
	case EmailProviderSendGrid, EmailProviderSMTP, EmailProviderNone:
	default:
		return errors.New("unsupported email provider: " + config.EmailProvider + ". Currently supported: sendgrid, smtp, none")
	}
	if config.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	return nil
}

// IsDevelopment reports whether the development logger should be used.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
