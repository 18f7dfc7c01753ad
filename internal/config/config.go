package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	LogLevel   string
	FeedBuffer int
}

// Load builds the configuration from defaults, an optional .env file
// and BOOK_* environment variables, in increasing precedence.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       ":9999",
		LogLevel:   "info",
		FeedBuffer: 64,
	}
	if v := os.Getenv("BOOK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("BOOK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BOOK_FEED_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FeedBuffer = n
		}
	}
	return cfg
}
