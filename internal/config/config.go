package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port                 string
	DatabaseURL          string // Optional server database (postgres:// or mysql DSN); empty means local SQLite
	DatabasePath         string // SQLite file used when DatabaseURL is not set
	MockInboxPath        string // Path to the mock inbox JSON file
	Version              string
	LogLevel             string
	GroqAPIKey           string // Groq API key; empty runs the LLM gateway in disabled mode
	GroqModel            string // Chat model served by Groq
	GroqBaseURL          string // OpenAI-compatible endpoint base URL
	LLMTimeout           int    // Per-request LLM timeout in seconds, applied by the HTTP layer
	InboxCacheTTLMinutes int    // How long the parsed mock inbox is cached
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DatabasePath:         getEnv("DATABASE_PATH", "data/app.db"),
		MockInboxPath:        getEnv("MOCK_INBOX_PATH", "data/mock_inbox.json"),
		Version:              getEnv("VERSION", "1.0.0"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		GroqAPIKey:           os.Getenv("GROQ_API_KEY"),
		GroqModel:            getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL:          getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMTimeout:           getEnvInt("LLM_TIMEOUT", 60),
		InboxCacheTTLMinutes: getEnvInt("INBOX_CACHE_TTL_MINUTES", 5),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "mailtriage").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
