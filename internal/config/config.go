package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string

	// engine
	SearchDepth int
	Difficulty  string
	TieBreak    string
	RandomSeed  int64
	HumanFirst  bool

	// optional move cache
	RedisURL      string
	RedisPassword string
	RedisDB       int
	MoveCacheTTL  time.Duration

	// session housekeeping
	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration

	LogLevel  string
	LogPretty bool
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,

		SearchDepth: GetEnvAsInt("SEARCH_DEPTH", 0),
		Difficulty:  GetEnv("BOT_DIFFICULTY", "medium"),
		TieBreak:    GetEnv("TIE_BREAK", "lowest"),
		RandomSeed:  GetEnvAsInt64("RANDOM_SEED", time.Now().UnixNano()),
		HumanFirst:  GetEnvAsBool("HUMAN_FIRST", true),

		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),
		MoveCacheTTL:  time.Duration(GetEnvAsInt("MOVE_CACHE_TTL_SECONDS", 3600)) * time.Second,

		SessionIdleTimeout: time.Duration(GetEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)) * time.Minute,
		CleanupInterval:    time.Duration(GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 5)) * time.Minute,

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogPretty: GetEnvAsBool("LOG_PRETTY", false),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int64("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}
