package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Redis      RedisConfig
	Database   DatabaseConfig
	Kafka      KafkaConfig
	ProductAPI ServiceConfig
	Features   FeatureConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects the slot-store backend: "file" (default),
// "redis" or "postgres".
type StoreConfig struct {
	Backend string
	DataDir string
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DatabaseConfig) ConnectionString() string {
	return "host=" + d.Host +
		" port=" + strconv.Itoa(d.Port) +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

type ServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type FeatureConfig struct {
	EnableOrderEvents bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Store: StoreConfig{
			Backend: getEnvString("STORE_BACKEND", "file"),
			DataDir: getEnvString("STORE_DATA_DIR", "./data"),
		},
		Redis: RedisConfig{
			Host:      getEnvString("REDIS_HOST", "localhost"),
			Port:      getEnvInt("REDIS_PORT", 6379),
			Password:  getEnvString("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnvString("REDIS_KEY_PREFIX", "storefront:"),
		},
		Database: DatabaseConfig{
			Host:     getEnvString("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnvString("DB_USER", "storefront"),
			Password: getEnvString("DB_PASSWORD", "storefront"),
			Name:     getEnvString("DB_NAME", "storefront"),
			SSLMode:  getEnvString("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers:     getEnvStringSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			OrdersTopic: getEnvString("KAFKA_ORDERS_TOPIC", "storefront.orders"),
		},
		ProductAPI: ServiceConfig{
			BaseURL: getEnvString("PRODUCT_API_URL", "https://dummyjson.com"),
			Timeout: time.Duration(getEnvInt("PRODUCT_API_TIMEOUT", 10)) * time.Second,
		},
		Features: FeatureConfig{
			EnableOrderEvents: getEnvBool("ENABLE_ORDER_EVENTS", false),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
