package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                 string
	SearchDepth          int
	DefaultDifficulty    string
	AllowedOrigins       []string
	FrontendURL          string
	RedisURL             string
	RedisPassword        string
	SessionTTL           time.Duration
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	HistoryRetentionDays int
	CleanupInterval      time.Duration
	LogLevel             string
	LogPretty            bool
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8000")

	// Engine
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 5)
	if searchDepth < 1 {
		log.Warn().Int("depth", searchDepth).Msg("SEARCH_DEPTH must be at least 1, using 1")
		searchDepth = 1
	}
	defaultDifficulty := GetEnv("DEFAULT_DIFFICULTY", "hard")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:8000")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Paused game store
	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 24*60)

	// Tally and history
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 10)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)
	retentionDays := GetEnvAsInt("HISTORY_RETENTION_DAYS", 30)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 60)

	AppConfig = &Config{
		Port:                 port,
		SearchDepth:          searchDepth,
		DefaultDifficulty:    defaultDifficulty,
		AllowedOrigins:       allowedOrigins,
		FrontendURL:          frontendURL,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		SessionTTL:           time.Duration(sessionTTLMin) * time.Minute,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		HistoryRetentionDays: retentionDays,
		CleanupInterval:      time.Duration(cleanupIntervalMin) * time.Minute,
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		LogPretty:            GetEnvAsBool("LOG_PRETTY", false),
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
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
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
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean, using default")
		return defaultValue
	}
	return value
}
