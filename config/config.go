package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API        APIConfig
	Credential CredentialConfig
	Redis      RedisConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Server     ServerConfig
	Form       FormConfig
	LogLevel   string
}

// APIConfig 遠端活動 API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CredentialConfig 決定 token 存放的位置
type CredentialConfig struct {
	Backend string // memory | redis
	Key     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret  string
	Expiration time.Duration
}

// ServerConfig 本機開發用 API 伺服器
type ServerConfig struct {
	Addr string
}

type FormConfig struct {
	EagerValidation bool
}

const (
	CredentialBackendMemory = "memory"
	CredentialBackendRedis  = "redis"

	// DefaultCredentialKey 與瀏覽器端 localStorage 使用的 key 相同
	DefaultCredentialKey = "token"
)

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		API:        GetAPIConfig(),
		Credential: GetCredentialConfig(),
		Redis:      GetRedisConfig(),
		Database:   GetDatabaseConfig(),
		Auth:       GetAuthConfig(),
		Server:     ServerConfig{Addr: getEnv("EVENTHUB_SERVER_ADDR", ":8000")},
		Form:       FormConfig{EagerValidation: getEnvAsBool("EVENTHUB_EAGER_VALIDATION", true)},
		LogLevel:   getEnv("EVENTHUB_LOG_LEVEL", "info"),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8001/api",
			Timeout: 2 * time.Second,
		},
		Credential: CredentialConfig{
			Backend: CredentialBackendMemory,
			Key:     DefaultCredentialKey,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // 測試 Redis 用 6380 port
			Password: "",
			DB:       1,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433", // 測試 DB 用 5433 port
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Auth: AuthConfig{
			JWTSecret:  "test-secret",
			Expiration: time.Hour,
		},
		Server:   ServerConfig{Addr: ":8001"},
		Form:     FormConfig{EagerValidation: true},
		LogLevel: "debug",
	}
}

func GetAPIConfig() APIConfig {
	return APIConfig{
		BaseURL: getEnv("EVENTHUB_API_URL", "http://localhost:8000/api"),
		Timeout: getEnvAsDuration("EVENTHUB_API_TIMEOUT", 10*time.Second),
	}
}

func GetCredentialConfig() CredentialConfig {
	return CredentialConfig{
		Backend: getEnv("EVENTHUB_CREDENTIAL_BACKEND", CredentialBackendRedis),
		Key:     getEnv("EVENTHUB_CREDENTIAL_KEY", DefaultCredentialKey),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
		Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func getEnvAsBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}
