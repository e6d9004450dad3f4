package config

import "os"

// Config holds the process configuration, read from environment variables.
// JWT settings live in pkg/jwt, which reads its own env.
type Config struct {
	Port    string
	DataDir string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "3000"),
		DataDir: getEnv("DATA_DIR", "data"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
