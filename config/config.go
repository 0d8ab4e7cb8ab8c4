package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password
	SMTPHost    string
	SMTPPort    string

	RedisAddr       string
	DashboardTTLSec int

	PageSize int

	// Reminder lead times (days)
	PaymentReminderDays     int
	DocumentReminderDays    int
	CertificateExpiryDays   int
	ReminderSweepCron       string
	CertificateValidityDays int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "noreply@landcert.gov"),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),

		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		DashboardTTLSec: getEnvInt("DASHBOARD_CACHE_TTL", 300),

		PageSize: getEnvInt("PAGE_SIZE", 10),

		PaymentReminderDays:     getEnvInt("PAYMENT_REMINDER_DAYS", 3),
		DocumentReminderDays:    getEnvInt("DOCUMENT_REMINDER_DAYS", 5),
		CertificateExpiryDays:   getEnvInt("CERTIFICATE_EXPIRY_REMINDER_DAYS", 30),
		ReminderSweepCron:       getEnv("REMINDER_SWEEP_CRON", "*/15 * * * *"),
		CertificateValidityDays: getEnvInt("CERTIFICATE_VALIDITY_DAYS", 365),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
