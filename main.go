package main

import (
	"fmt"
	"log"
	"os"

	"talentscout-assistant/internal/config"
	"talentscout-assistant/internal/metrics"
	"talentscout-assistant/internal/questionbank"
	"talentscout-assistant/internal/shell"
	"talentscout-assistant/internal/storage"
	"talentscout-assistant/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🎯 Starting TalentScout screening assistant...")

	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadAppConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Инициализируем банк вопросов
	bank := questionbank.New()
	if _, err := os.Stat(cfg.Questions.Path); err == nil {
		bankFile, err := config.LoadQuestionBank(cfg.Questions.Path)
		if err != nil {
			log.Fatalf("Failed to load question bank config: %v", err)
		}
		for _, tech := range bankFile.Technologies {
			bank.AddTechnology(tech.Name, tech.Basic, tech.Intermediate, tech.Advanced)
		}
		fmt.Printf("✅ Question bank extended from %s\n", cfg.Questions.Path)
	} else {
		fmt.Println("✅ Using built-in question bank")
	}
	fmt.Printf("• Technologies in bank: %d\n", len(bank.Technologies()))

	// Инициализируем хранилище анкет
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	defer store.Close()
	fmt.Printf("✅ Record store initialized (%s, retention %d days)\n",
		cfg.Storage.Backend, cfg.Storage.RetentionDays)

	m := metrics.NewMetrics()

	// Telegram бот при наличии токена, иначе локальная консоль
	if cfg.Telegram.Token != "" {
		bot := telegram.New(cfg.Telegram.Token)
		handler := telegram.NewHandler(bot, bank, store, m)

		fmt.Println("\n🤖 Telegram bot started!")
		fmt.Println("⏳ Waiting for messages...")
		fmt.Println("📱 Find the bot in Telegram and send /start")

		if err := bot.StartPolling(handler.HandleUpdate); err != nil {
			log.Fatalf("Failed to start bot: %v", err)
		}
		return
	}

	fmt.Println("\n💬 No TELEGRAM_BOT_TOKEN set, starting console session")
	console := shell.NewConsole(bank, store, m, os.Stdin, os.Stdout)
	if err := console.Run(); err != nil {
		log.Fatalf("Console session failed: %v", err)
	}

	snapshot := m.GetSnapshot()
	fmt.Printf("\n📊 Session metrics: %d started, %d completed, %d questions asked, %d records saved\n",
		snapshot.ScreeningsStarted, snapshot.ScreeningsCompleted,
		snapshot.QuestionsAsked, snapshot.RecordsSaved)
}

// newStore создает хранилище анкет согласно конфигурации.
func newStore(cfg *config.AppConfig) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(cfg.Storage.DatabasePath, cfg.Storage.RetentionDays)
	case config.BackendFile:
		return storage.NewFileStore(cfg.Storage.DataDir, cfg.Storage.RetentionDays, cfg.Storage.Pseudonymize)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
