package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	RedisAddr string
	RedisDB   string

	KafkaBrokers []string
	KafkaTopic   string

	RazorpayKey    string
	RazorpaySecret string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; the environment may be populated by the deployment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisDB:        os.Getenv("REDIS_DB"),
		KafkaTopic:     os.Getenv("KAFKA_TOPIC"),
		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		config.KafkaBrokers = strings.Split(brokers, ",")
	}
	if config.KafkaTopic == "" {
		config.KafkaTopic = "order-events"
	}
	if config.Port == "" {
		config.Port = "8080"
	}

	return config, nil
}
