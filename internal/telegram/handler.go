package telegram

import (
	"log"
	"strings"
	"sync"
	"time"

	"talentscout-assistant/internal/chatbot"
	"talentscout-assistant/internal/metrics"
	"talentscout-assistant/internal/questionbank"
	"talentscout-assistant/internal/storage"

	"github.com/google/uuid"
)

type RateLimiter struct {
	requests map[int64][]time.Time
	mutex    sync.Mutex
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[int64][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) IsAllowed(userID int64) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	if requests, exists := rl.requests[userID]; exists {
		var valid []time.Time
		for _, t := range requests {
			if now.Sub(t) < rl.window {
				valid = append(valid, t)
			}
		}
		rl.requests[userID] = valid
	}

	if len(rl.requests[userID]) >= rl.limit {
		return false
	}

	rl.requests[userID] = append(rl.requests[userID], now)
	return true
}

// Handler маршрутизирует обновления Telegram в движки диалогов.
// Каждый чат получает собственную сессию скрининга.
type Handler struct {
	bot           *Bot
	bank          *questionbank.Bank
	store         storage.Store
	metrics       *metrics.Metrics
	sessions      map[int64]*UserSession
	sessionsMutex sync.RWMutex
	rateLimiter   *RateLimiter
}

func NewHandler(bot *Bot, bank *questionbank.Bank, store storage.Store, m *metrics.Metrics) *Handler {
	h := &Handler{
		bot:         bot,
		bank:        bank,
		store:       store,
		metrics:     m,
		sessions:    make(map[int64]*UserSession),
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
	h.startSessionCleanup()
	return h
}

func (h *Handler) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			h.cleanupInactiveSessions()
		}
	}()
}

func (h *Handler) cleanupInactiveSessions() {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	cutoff := time.Now().Add(-24 * time.Hour)
	for chatID, session := range h.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(h.sessions, chatID)
		}
	}
}

// HandleUpdate обрабатывает одно обновление от Telegram.
func (h *Handler) HandleUpdate(update Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if !h.rateLimiter.IsAllowed(userID) {
		h.bot.SendMessage(chatID, "⏳ Too many messages. Please wait a minute.")
		return
	}

	session := h.getOrCreateSession(chatID)
	session.LastActivity = time.Now()

	if strings.HasPrefix(text, "/") {
		h.handleCommand(chatID, text, session)
		return
	}
	h.handleUserInput(chatID, text, session)
}

// handleCommand обрабатывает команды бота
func (h *Handler) handleCommand(chatID int64, command string, session *UserSession) {
	switch command {
	case "/start":
		h.handleStartCommand(chatID, session)
	case "/help":
		h.handleHelpCommand(chatID)
	case "/status":
		h.handleStatusCommand(chatID, session)
	case "/restart":
		h.handleRestartCommand(chatID, session)
	case "/stop":
		h.handleStopCommand(chatID, session)
	default:
		h.bot.SendMessage(chatID, "Unknown command. Use /help for the list of commands.")
	}
}

// handleStartCommand начинает новый скрининг
func (h *Handler) handleStartCommand(chatID int64, session *UserSession) {
	if session.Engine != nil && session.Engine.State() != chatbot.StateEnded {
		h.bot.SendMessage(chatID, "You already have a screening in progress. Use /status to check your progress or /restart to start over.")
		return
	}

	session.SessionID = uuid.New().String()
	session.Engine = chatbot.New(h.bank)
	session.Saved = false
	h.metrics.IncrementScreeningsStarted()

	h.bot.SendMessage(chatID, session.Engine.Start())
}

// handleHelpCommand обрабатывает команду /help
func (h *Handler) handleHelpCommand(chatID int64) {
	helpText := `🎯 *TalentScout screening assistant*

*Commands:*
/start - Begin a new screening
/status - Check your current progress
/restart - Restart the screening from the beginning
/stop - Stop the screening and save your answers
/help - Show this message

*How it works:*
1. Use /start to begin
2. Answer the questions about yourself
3. List your tech stack, separated by commas
4. Answer 3 technical questions per technology
5. Type 'exit' at any point to finish

Your information is handled in compliance with data privacy standards and used solely for recruitment purposes.`

	h.bot.SendMessage(chatID, helpText)
}

// handleStatusCommand показывает прогресс скрининга
func (h *Handler) handleStatusCommand(chatID int64, session *UserSession) {
	if session.Engine == nil {
		h.bot.SendMessage(chatID, "No screening in progress. Use /start to begin.")
		return
	}

	switch session.Engine.State() {
	case chatbot.StateEnded:
		h.bot.SendMessage(chatID, "Your screening has ended. Use /start to begin a new one.")
	default:
		h.bot.SendFormattedMessage(chatID, "📊 *Screening progress*\n\n🆔 Session: `%s`\n📈 Progress: %d%%",
			session.SessionID, session.Engine.Progress())
	}
}

// handleRestartCommand перезапускает скрининг
func (h *Handler) handleRestartCommand(chatID int64, session *UserSession) {
	session.Engine = nil
	session.SessionID = ""
	session.Saved = false
	h.bot.SendMessage(chatID, "🔄 Screening reset. Use /start to begin a new one.")
}

// handleStopCommand завершает скрининг и сохраняет анкету
func (h *Handler) handleStopCommand(chatID int64, session *UserSession) {
	if session.Engine == nil {
		h.bot.SendMessage(chatID, "No screening in progress.")
		return
	}
	h.finishSession(chatID, session)
}

// handleUserInput обрабатывает ответы пользователя
func (h *Handler) handleUserInput(chatID int64, text string, session *UserSession) {
	if session.Engine == nil {
		h.bot.SendMessage(chatID, "Use /start to begin your screening or /help for assistance.")
		return
	}

	// Ключевые слова завершения распознает хост и вызывает Terminate,
	// не пропуская их через Process.
	if chatbot.IsEndCommand(text) {
		h.finishSession(chatID, session)
		return
	}

	askedBefore := len(session.Engine.AskedQuestions())
	stateBefore := session.Engine.State()
	response := session.Engine.Process(text)
	h.metrics.AddQuestionsAsked(len(session.Engine.AskedQuestions()) - askedBefore)

	if stateBefore != chatbot.StateCompleted && session.Engine.State() == chatbot.StateCompleted {
		h.metrics.IncrementScreeningsCompleted()
	}

	h.bot.SendMessage(chatID, response)
}

// finishSession завершает диалог и передает анкету в хранилище.
// Ошибка сохранения логируется и не мешает показать прощальное сообщение:
// завершение диалога не зависит от успеха персистентности.
func (h *Handler) finishSession(chatID int64, session *UserSession) {
	farewell := session.Engine.Terminate()

	if !session.Saved {
		record := session.Engine.Candidate()
		record.TechnicalQuestions = session.Engine.AskedQuestions()

		if err := h.store.Upsert(&record); err != nil {
			log.Printf("telegram handler: save candidate record: %v", err)
			h.metrics.IncrementRecordSave(false)
		} else {
			log.Printf("telegram handler: candidate record saved: %s", record.CandidateID)
			h.metrics.IncrementRecordSave(true)
			session.Saved = true
			h.bot.SendFormattedMessage(chatID, "✅ Your application has been recorded.\n🆔 Reference: `%s`", record.CandidateID)
		}
	}

	h.bot.SendMessage(chatID, farewell)
}

// Вспомогательные методы
func (h *Handler) getOrCreateSession(chatID int64) *UserSession {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	if session, exists := h.sessions[chatID]; exists {
		return session
	}

	session := &UserSession{
		ChatID:       chatID,
		LastActivity: time.Now(),
	}
	h.sessions[chatID] = session
	return session
}

// SessionCount возвращает число активных сессий.
func (h *Handler) SessionCount() int {
	h.sessionsMutex.RLock()
	defer h.sessionsMutex.RUnlock()
	return len(h.sessions)
}
