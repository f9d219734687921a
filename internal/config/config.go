package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultWSDLURL = "http://www.openligadb.de/Webservices/Sportsdata.asmx?WSDL"
	defaultTimeout = 30 * time.Second
	defaultPort    = "8080"
)

// Load reads configuration from environment variables and .env file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	timeout := defaultTimeout
	if raw := getEnv("LIGADB_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LIGADB_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid LIGADB_TIMEOUT %q: must be positive", raw)
		}
		timeout = d
	}

	level := getEnv("LOG_LEVEL", "info")
	if _, err := log.ParseLevel(level); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	cfg := Config{
		Port:     getEnv("PORT", defaultPort),
		LogLevel: level,
		Service: ServiceConfig{
			WSDLURL:  getEnv("LIGADB_WSDL_URL", defaultWSDLURL),
			Endpoint: getEnv("LIGADB_ENDPOINT", ""),
			Timeout:  timeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
