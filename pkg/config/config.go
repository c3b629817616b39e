package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	LogLevel         string
	LogFormat        string
	VocabularyFile   string
	DatabaseURL      string
	DBMaxConns       int
	DBConnectTimeout time.Duration
	RedisURL         string
	CacheTTL         time.Duration
	JWTSecret        string
	JWTIssuer        string
	JWTTTLMinutes    int
	MaxUploadBytes   int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "5002"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		VocabularyFile:   os.Getenv("VOCABULARY_FILE"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 5),
		DBConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		RedisURL:         os.Getenv("REDIS_URL"),
		CacheTTL:         time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        getEnv("JWT_ISSUER", "skillscan"),
		JWTTTLMinutes:    getEnvInt("JWT_TTL_MINUTES", 60),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", 15)) << 20,
	}
	return cfg
}

// HistoryEnabled reports whether extraction history is configured.
func (c Config) HistoryEnabled() bool { return c.DatabaseURL != "" }

// CacheEnabled reports whether the result cache is configured.
func (c Config) CacheEnabled() bool { return c.RedisURL != "" && c.CacheTTL > 0 }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
