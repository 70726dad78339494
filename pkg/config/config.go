package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ListenAddr = ":8080"

	// Catalog settings. When CatalogPath is empty the embedded seed
	// catalog is used.
	CatalogPath = ""

	// Waitlist settings
	WaitlistURL = ""

	// CORS settings
	CORSOrigins = []string{"*"}

	// Logging
	LogLevel = "info"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	CatalogPath = getEnv("CATALOG_PATH", "")
	WaitlistURL = getEnv("WAITLIST_URL", "")
	LogLevel = getEnv("LOG_LEVEL", "info")

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		CORSOrigins = strings.Split(origins, ",")
	}
}

func SessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "workblox-dev-secret"
	}
	return secret
}
