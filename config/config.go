package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Ticketing TicketingConfig
	Queue     QueueConfig
	LogLevel  string
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// TicketingConfig 票務相關設定
type TicketingConfig struct {
	// ReferenceCurrency is used for zero totals and the conversion-failure sentinel.
	ReferenceCurrency string
	PurchaseLockTTL   time.Duration
}

type QueueConfig struct {
	// Driver is "redis" or "memory".
	Driver     string
	BufferSize int
	ConsumerID string
}

var AppConfig *Config

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Ticketing: GetTicketingConfig(),
		Queue:     GetQueueConfig(),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Ticketing: TicketingConfig{
			ReferenceCurrency: "USD",
			PurchaseLockTTL:   5 * time.Second,
		},
		Queue:    QueueConfig{Driver: "memory", BufferSize: 16},
		LogLevel: "debug",
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("SERVER_PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
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

func GetTicketingConfig() TicketingConfig {
	ttl, err := time.ParseDuration(getEnv("PURCHASE_LOCK_TTL", "10s"))
	if err != nil {
		panic(err)
	}

	return TicketingConfig{
		ReferenceCurrency: strings.ToUpper(getEnv("REFERENCE_CURRENCY", "USD")),
		PurchaseLockTTL:   ttl,
	}
}

func GetQueueConfig() QueueConfig {
	size, err := strconv.Atoi(getEnv("PAYMENT_QUEUE_BUFFER", "256"))
	if err != nil {
		panic(err)
	}

	return QueueConfig{
		Driver:     getEnv("PAYMENT_QUEUE", "redis"),
		BufferSize: size,
		ConsumerID: getEnv("PAYMENT_CONSUMER_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
