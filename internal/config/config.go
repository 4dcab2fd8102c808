package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID   string
	Region      string
	Port        string
	LogLevel    string
	VertexModel string
}

// New reads configuration from the environment. A .env file, if present, is
// loaded first so local runs don't need exported variables; Cloud Run ignores
// the missing file.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:   os.Getenv("PROJECTID"),
		Region:      os.Getenv("REGION"),
		Port:        getOr("PORT", "8080"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		VertexModel: getOr("VERTEXMODEL", "gemini-1.5-flash"),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
