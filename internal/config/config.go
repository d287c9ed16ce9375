package config

import (
	"errors"
	"os"
	"time"
)

// Config carries everything the process needs from the environment. The LLM
// client and the services receive it explicitly instead of reading globals.
type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	UploadDir    string
	FetchTimeout time.Duration
}

// Load reads the process environment. A missing GEMINI_API_KEY is a startup
// error: without it every extraction degrades silently, so we fail fast.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		FetchTimeout: 10 * time.Second,
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
