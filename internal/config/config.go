package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	DatabaseDSN      string
	DictionaryPath   string
	Alphabet         string
	GridSize         int
	SelectionTimeout time.Duration
	PlacementTimeout time.Duration
}

// Load reads .env if present, then the environment. Only the database DSN is
// required.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		DictionaryPath:   getenv("DICTIONARY_PATH", "words.txt"),
		Alphabet:         getenv("ALPHABET", ""),
		GridSize:         getint("GRID_SIZE", 5),
		SelectionTimeout: getdur("SELECTION_TIMEOUT", 30*time.Second),
		PlacementTimeout: getdur("PLACEMENT_TIMEOUT", 45*time.Second),
	}
	if cfg.DatabaseDSN == "" {
		return cfg, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.GridSize < 2 {
		return cfg, fmt.Errorf("GRID_SIZE must be at least 2")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
