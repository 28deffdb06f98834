package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	DBPath string // SQLite file, e.g. "quizpace.db"

	// Scoring
	ScoringURL string // external scoring service; empty = score locally

	// Session engine
	AutoAdvanceDelay time.Duration // pause before continuous mode advances
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:           getenvDefault("DB_PATH", "quizpace.db"),
		ScoringURL:       os.Getenv("SCORING_URL"),
		AutoAdvanceDelay: getDurationDefault("AUTO_ADVANCE_DELAY", time.Second),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
