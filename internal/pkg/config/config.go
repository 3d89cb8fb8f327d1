package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Session SessionConfig
	Latency LatencyConfig
	Notify  NotifyConfig
	CORS    CORSConfig
	Logger  LoggerConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageConfig содержит настройки durable хранилища
type StorageConfig struct {
	// Dir - директория, в которой лежат JSON файлы коллекций
	Dir string
}

// SessionConfig содержит настройки сессионного токена
type SessionConfig struct {
	SecretKey string
	Expiry    time.Duration
}

// LatencyConfig содержит искусственные задержки "сетевых" операций
// Реального бэкенда нет; задержки имитируют его ради реалистичности
type LatencyConfig struct {
	Login       time.Duration
	Appointment time.Duration
}

// NotifyConfig содержит настройки очереди уведомлений
type NotifyConfig struct {
	TTL time.Duration
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// LoggerConfig содержит настройки логирования
type LoggerConfig struct {
	Level  string
	Format string // json или console
	Output string // stdout или путь к файлу
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			Dir: getEnv("STORAGE_DIR", "./data"),
		},
		Session: SessionConfig{
			SecretKey: getEnv("SESSION_SECRET", "your-secret-key-change-this-in-production"),
			Expiry:    getDurationEnv("SESSION_EXPIRY", 12*time.Hour),
		},
		Latency: LatencyConfig{
			Login:       getDurationEnv("LATENCY_LOGIN", 800*time.Millisecond),
			Appointment: getDurationEnv("LATENCY_APPOINTMENT", 500*time.Millisecond),
		},
		Notify: NotifyConfig{
			TTL: getDurationEnv("NOTIFY_TTL", 5*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
			},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	return cfg, nil
}

// Address возвращает адрес сервера
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
