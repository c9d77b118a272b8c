package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	ServerAddr  string `mapstructure:"SERVER_ADDR"`

	// RedisAddr selects the Redis-backed stats cache. When empty the
	// in-process cache is used instead.
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	// TaskToken guards the internal /tasks and /crons endpoints.
	// When empty the endpoints are open (local development).
	TaskToken string `mapstructure:"TASK_TOKEN"`

	// SMTPAddr and MailFrom configure the reminder mailer. When either is
	// empty, reminders are logged instead of sent.
	SMTPAddr string `mapstructure:"SMTP_ADDR"`
	MailFrom string `mapstructure:"MAIL_FROM"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_ADDR", ":8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
