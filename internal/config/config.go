package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port            string
	DatabaseURL     string
	OpenAIAPIKey    string
	TwilioAuthToken string
	PublicBaseURL   string
	LocalTimezone   *time.Location
	AssistantDelay  time.Duration
	SnoozePeriod    time.Duration
	AllowedOrigins  []string
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	port := getenvDefault("PORT", "8080")
	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")

	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		Port:            port,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		TwilioAuthToken: os.Getenv("TWILIO_AUTH_TOKEN"),
		PublicBaseURL:   strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		LocalTimezone:   location,
		AssistantDelay:  time.Duration(ParseIntEnv("ASSISTANT_DELAY_MS", 1000)) * time.Millisecond,
		SnoozePeriod:    time.Duration(ParseIntEnv("SNOOZE_DAYS", 7)) * 24 * time.Hour,
		AllowedOrigins:  splitList(getenvDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		log.Printf("config: unable to parse %s=%q as non-negative int: %v", key, value, err)
		return def
	}
	return parsed
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
