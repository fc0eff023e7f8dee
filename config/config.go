package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	StoragePath string

	TelegramBotToken string
	TelegramChatID   string

	FCMServerKey string

	SendgridAPIKey string
	MailFrom       string
	MailFromName   string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "pumba"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		StoragePath: get("STORAGE_PATH", "storage/public"),

		TelegramBotToken: get("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   get("TELEGRAM_CHAT_ID", ""),

		FCMServerKey: get("FCM_SERVER_KEY", ""),

		SendgridAPIKey: get("SENDGRID_API_KEY", ""),
		MailFrom:       get("MAIL_FROM", "mriyadev@gmail.com"),
		MailFromName:   get("MAIL_FROM_NAME", "Pumba"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
