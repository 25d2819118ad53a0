package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/emergency_dispatch_system/internal/severity"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"0"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Position feed Config
	FeedQueueKey   string        `env:"FEED_QUEUE_KEY" envDefault:"position_updates"`
	FeedRetryDelay time.Duration `env:"FEED_RETRY_DELAY" envDefault:"5s"`

	// Geo index Config
	IndexCellLevel int `env:"INDEX_CELL_LEVEL" envDefault:"13"`

	// Severity Config
	SeverityMode severity.Mode `env:"SEVERITY_MODE" envDefault:"strict"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", 0),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		FeedQueueKey:   getEnv("FEED_QUEUE_KEY", "position_updates"),
		FeedRetryDelay: getEnvAsDuration("FEED_RETRY_DELAY", 5*time.Second),
		IndexCellLevel: getEnvAsInt("INDEX_CELL_LEVEL", 13),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	mode, err := severity.ParseMode(os.Getenv("SEVERITY_MODE"))
	if err != nil {
		return nil, fmt.Errorf("SEVERITY_MODE: %w", err)
	}
	cfg.SeverityMode = mode

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.IndexCellLevel < 1 || cfg.IndexCellLevel > 30 {
		return nil, fmt.Errorf("INDEX_CELL_LEVEL must be within [1, 30], got %d", cfg.IndexCellLevel)
	}
	if cfg.FeedRetryDelay <= 0 {
		return nil, fmt.Errorf("FEED_RETRY_DELAY must be positive, got %s", cfg.FeedRetryDelay)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
