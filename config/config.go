package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	DynamoDB DynamoDBConfig
	HTTP     HTTPConfig
	LogLevel string
}

type StorageConfig struct {
	Backend  string
	DataFile string
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
	Prefix   string
}

type DynamoDBConfig struct {
	Region   string
	Endpoint string
	Table    string
}

type HTTPConfig struct {
	Addr string
}

// LoadConfig 讀取環境變數，若工作目錄有 .env 會先載入
func LoadConfig() *Config {
	// .env 不存在時直接使用系統環境變數
	_ = godotenv.Load()

	return &Config{
		Storage:  GetStorageConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		DynamoDB: GetDynamoDBConfig(),
		HTTP:     HTTPConfig{Addr: getEnv("HTTP_ADDR", ":8080")},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func LoadTestConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:  StorageFile,
			DataFile: "test_tickets.json",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433", // 測試 DB 用 5433 port
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // 測試 Redis 用 6380 port
			Password: "",
			DB:       1,
			Prefix:   "test_tickets",
		},
		DynamoDB: DynamoDBConfig{
			Region:   "us-east-1",
			Endpoint: "http://localhost:8001", // 測試用 dynamodb-local
			Table:    "test_tickets",
		},
		HTTP:     HTTPConfig{Addr: ":18080"},
		LogLevel: "debug",
	}
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Backend:  getEnv("STORAGE_BACKEND", StorageFile),
		DataFile: getEnv("DATA_FILE", "tickets.json"),
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
		Prefix:   getEnv("REDIS_PREFIX", "tickets"),
	}
}

func GetDynamoDBConfig() DynamoDBConfig {
	return DynamoDBConfig{
		Region:   getEnv("AWS_REGION", "us-east-1"),
		Endpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		Table:    getEnv("DYNAMODB_TABLE", "tickets"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
