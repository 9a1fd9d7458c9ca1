package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiConcurrentReqs int

	// Knowledge base
	KBDir            string
	VehicleSizesFile string

	// Business
	SupportPhone string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	kbDir := getEnvOrDefault("KB_DIR", "./kb")

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		KBDir:                kbDir,
		VehicleSizesFile:     getEnvOrDefault("VEHICLE_SIZES_FILE", filepath.Join(kbDir, "vehicle_sizes.md")),
		SupportPhone:         getEnvOrDefault("SUPPORT_PHONE", ""),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
