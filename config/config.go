package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	Timezone         string
	DBPath           string
	MailEndpoint     string
	MailAPIKey       string
	MailFrom         string
	DigestHorizonDay int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	horizon, err := strconv.Atoi(get("DIGEST_HORIZON_DAYS", "7"))
	if err != nil || horizon <= 0 {
		horizon = 7
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Europe/Amsterdam"),
		DBPath:           get("DB_PATH", "gardenplan.db"),
		MailEndpoint:     get("MAIL_ENDPOINT", ""),
		MailAPIKey:       get("MAIL_API_KEY", ""),
		MailFrom:         get("MAIL_FROM", "digest@gardenplan.local"),
		DigestHorizonDay: horizon,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
