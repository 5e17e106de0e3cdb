package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Значения по умолчанию, совпадают с дефолтами флагов в main
const (
	DefaultServerURL     = "http://localhost:3000"
	DefaultTokenLifetime = "10m"
	DefaultDBPath        = "pitchmate.db"
)

// Config содержит настройки клиента.
// Источники (по убыванию приоритета): флаги командной строки,
// переменные окружения, файл .env, значения по умолчанию.
type Config struct {
	ServerURL          string // адрес сервера Pitchmate
	TokenLifetime      string // срок жизни access token: "10m", "1h", "1d"
	DBPath             string // путь к локальной базе BoltDB
	GoogleClientID     string // OAuth client id для входа через Google
	GoogleClientSecret string // OAuth client secret для входа через Google
}

// Load читает конфигурацию из .env файла и переменных окружения
func Load() *Config {
	// .env может отсутствовать, это не ошибка
	_ = godotenv.Load()

	return &Config{
		ServerURL:          getEnv("PITCHMATE_SERVER_URL", DefaultServerURL),
		TokenLifetime:      getEnv("PITCHMATE_TOKEN_LIFETIME", DefaultTokenLifetime),
		DBPath:             getEnv("PITCHMATE_DB", DefaultDBPath),
		GoogleClientID:     os.Getenv("PITCHMATE_GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("PITCHMATE_GOOGLE_CLIENT_SECRET"),
	}
}

// Validate проверяет, что обязательные настройки заданы и корректны
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	if _, err := ParseLifetime(c.TokenLifetime); err != nil {
		return fmt.Errorf("invalid token lifetime %q: %w", c.TokenLifetime, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
