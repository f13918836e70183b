package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Redis  RedisConfig
	DB     DatabaseConfig
	Gemini GeminiConfig
	Admin  AdminConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	// Driver selects the document store backing: "redis" or "postgres".
	Driver string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	DSN string
}

type GeminiConfig struct {
	BaseURL        string
	APIKey         string
	ChatModel      string
	CodeModel      string
	TimeoutSeconds int
}

type AdminConfig struct {
	Password          string
	SessionTTLMinutes int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "redis"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		DB: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Gemini: GeminiConfig{
			BaseURL:        getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			ChatModel:      getEnv("GEMINI_CHAT_MODEL", "gemini-3-flash-preview"),
			CodeModel:      getEnv("GEMINI_CODE_MODEL", "gemini-3-pro-preview"),
			TimeoutSeconds: getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60),
		},
		Admin: AdminConfig{
			Password:          getEnv("ADMIN_PASSWORD", ""),
			SessionTTLMinutes: getEnvAsInt("ADMIN_SESSION_TTL_MINUTES", 720),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	switch c.Store.Driver {
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store driver")
		}
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Gemini.APIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set, gateway calls will fail")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
