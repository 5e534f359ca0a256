package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DBSource       string
	Port           string
	JWTSecret      string
	TaxRateBp      int64 // tax rate in basis points, 250 = 2.5%
	PaymentAPIBase string
	PaymentAPIKey  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "pos.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		TaxRateBp:      getEnvInt64("TAX_RATE_BP", 250),
		PaymentAPIBase: getEnv("PAYMENT_API_BASE", "http://localhost:9000"),
		PaymentAPIKey:  os.Getenv("PAYMENT_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
