package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
	OTPTTL      time.Duration

	MailProvider string
	SendGridKey  string
	MailFrom     string
	MailFromName string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string

	JWTSecret         string
	JWTTTL            time.Duration
	RequireAdminToken bool
}

// LoadConfig reads the environment, loading .env first outside production.
func LoadConfig() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":3001"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		OTPTTL:            time.Duration(getEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute,
		MailProvider:      strings.ToLower(getEnv("MAIL_PROVIDER", "sendgrid")),
		SendGridKey:       os.Getenv("SENDGRID_API_KEY"),
		MailFrom:          os.Getenv("MAIL_FROM"),
		MailFromName:      getEnv("MAIL_FROM_NAME", "Venue Booking"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		RequireAdminToken: getEnvBool("REQUIRE_ADMIN_TOKEN", false),
	}

	return cfg, cfg.Validate()
}

// Validate reports every missing required setting at once.
func (c Config) Validate() error {
	missing := []string{}
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.MailFrom == "" {
		missing = append(missing, "MAIL_FROM")
	}
	switch c.MailProvider {
	case "sendgrid":
		if c.SendGridKey == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
	case "smtp":
		if c.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.SMTPUser == "" {
			missing = append(missing, "SMTP_USER")
		}
		if c.SMTPPass == "" {
			missing = append(missing, "SMTP_PASS")
		}
	default:
		return errors.New("unknown MAIL_PROVIDER: " + c.MailProvider)
	}
	if c.OTPTTL <= 0 {
		return errors.New("OTP_TTL_MINUTES must be positive")
	}
	if c.RequireAdminToken && c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return errors.New("missing env: " + strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
