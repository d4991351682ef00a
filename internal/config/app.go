package config

import (
	"fmt"
	"os"
	"strconv"

	"talentscout-assistant/internal/storage"
)

// BackendSQLite и BackendFile — поддерживаемые бэкенды хранилища анкет.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type AppConfig struct {
	Storage   StorageConfig
	Telegram  TelegramConfig
	Questions QuestionsConfig
}

type StorageConfig struct {
	Backend       string
	DatabasePath  string
	DataDir       string
	RetentionDays int
	Pseudonymize  bool
}

type TelegramConfig struct {
	Token string
}

type QuestionsConfig struct {
	Path string
}

// LoadAppConfig загружает конфигурацию приложения из переменных окружения.
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", BackendSQLite),
			DatabasePath:  getEnv("DATABASE_PATH", "data/candidates.db"),
			DataDir:       getEnv("DATA_DIR", "data"),
			RetentionDays: getEnvAsInt("DATA_RETENTION_DAYS", storage.DefaultRetentionDays),
			Pseudonymize:  getEnvAsBool("PSEUDONYMIZE_DATA", true),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		Questions: QuestionsConfig{
			Path: getEnv("QUESTIONS_CONFIG", "config/questions.yaml"),
		},
	}
}

// Validate проверяет корректность конфигурации. Отсутствие обязательной
// конфигурации хранилища — фатальная ошибка запуска, а не ошибка запроса.
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for the sqlite storage backend")
		}
	case BackendFile:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file storage backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if c.Storage.RetentionDays <= 0 {
		return fmt.Errorf("DATA_RETENTION_DAYS must be positive")
	}

	return nil
}

// helper функции для чтения переменных окружения
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
