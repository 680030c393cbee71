package config

import (
	"os"
	"strconv"
	"time"
)

// Config collects everything the gateway reads from the environment.
// godotenv.Load in main makes a local .env usable during development.
type Config struct {
	Port string

	CommerceAPIURL     string
	CommerceAPITimeout time.Duration

	JWTSecret  string
	SessionTTL time.Duration

	RedisAddr string

	KafkaBroker        string
	PaymentEventsTopic string
	ConsumerGroupID    string

	MidtransServerKey    string
	MidtransIsProduction bool

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	DefaultPaymentProvider string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "3000"),

		CommerceAPIURL:     getEnv("COMMERCE_API_URL", "http://localhost:8080/api"),
		CommerceAPITimeout: getDuration("COMMERCE_API_TIMEOUT", 15*time.Second),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBroker:        getEnv("KAFKA_BROKER", "localhost:9092"),
		PaymentEventsTopic: getEnv("PAYMENT_EVENTS_TOPIC", "payment.events"),
		ConsumerGroupID:    getEnv("CONSUMER_GROUP_ID", "storefront-gateway"),

		MidtransServerKey:    os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransIsProduction: os.Getenv("MIDTRANS_IS_PRODUCTION") == "true",

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "products"),

		DefaultPaymentProvider: getEnv("DEFAULT_PAYMENT_PROVIDER", "stripe"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
