package chatbot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"talentscout-assistant/internal/questionbank"
	"talentscout-assistant/internal/storage"
)

// State представляет состояние диалога.
type State string

const (
	StateGreeting           State = "greeting"
	StateName               State = "name"
	StateEmail              State = "email"
	StatePhone              State = "phone"
	StateExperience         State = "experience"
	StatePosition           State = "position"
	StateLocation           State = "location"
	StateTechStack          State = "tech_stack"
	StateTechnicalQuestions State = "technical_questions"
	StateCompleted          State = "completed"
	StateEnded              State = "ended"
)

// stateOrder задает строгий линейный порядок состояний диалога.
// Терминальное состояние ended в порядок не входит.
var stateOrder = []State{
	StateGreeting, StateName, StateEmail, StatePhone, StateExperience,
	StatePosition, StateLocation, StateTechStack, StateTechnicalQuestions, StateCompleted,
}

// questionsPerTech задает число вопросов на одну технологию.
const questionsPerTech = 3

// Правила валидации полей анкеты
var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-().]{8,20}$`)
	digitsRun    = regexp.MustCompile(`\d+`)
)

// endKeywords — ключевые слова завершения диалога. Их распознает хост
// (презентационный слой) и вызывает Terminate вместо Process.
var endKeywords = []string{"exit", "quit", "bye", "goodbye", "end", "stop"}

// IsEndCommand сообщает, содержит ли ввод пользователя ключевое слово
// завершения диалога.
func IsEndCommand(input string) bool {
	lower := strings.ToLower(input)
	for _, keyword := range endKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Engine управляет диалогом скрининга одного кандидата: собирает поля анкеты
// по фиксированной последовательности состояний, затем задает по три
// технических вопроса на каждую заявленную технологию.
// Один экземпляр обслуживает ровно одну сессию и не является потокобезопасным.
type Engine struct {
	bank             *questionbank.Bank
	state            State
	candidate        storage.CandidateRecord
	askedQuestions   []string
	currentTechIndex int
}

// New создает движок диалога в начальном состоянии.
func New(bank *questionbank.Bank) *Engine {
	return &Engine{
		bank:  bank,
		state: StateGreeting,
	}
}

// Start начинает диалог: переводит движок в состояние сбора имени
// и возвращает приветствие с первым вопросом.
func (e *Engine) Start() string {
	e.state = StateName
	return msgGreeting
}

// Process обрабатывает ввод пользователя согласно текущему состоянию.
// Невалидный ввод не продвигает состояние: возвращается подсказка
// с исходным вопросом.
func (e *Engine) Process(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return msgEmptyInput
	}

	switch e.state {
	case StateName:
		return e.handleName(input)
	case StateEmail:
		return e.handleEmail(input)
	case StatePhone:
		return e.handlePhone(input)
	case StateExperience:
		return e.handleExperience(input)
	case StatePosition:
		return e.handlePosition(input)
	case StateLocation:
		return e.handleLocation(input)
	case StateTechStack:
		return e.handleTechStack(input)
	case StateTechnicalQuestions:
		return e.handleTechnicalQuestions(input)
	default:
		return e.handleFallback()
	}
}

func (e *Engine) handleName(input string) string {
	if !namePattern.MatchString(input) {
		return msgNameRetry
	}
	e.candidate.Name = input
	e.state = StateEmail
	return fmt.Sprintf("Nice to meet you, %s! 👋\n\n**What's your email address?**", input)
}

func (e *Engine) handleEmail(input string) string {
	if !emailPattern.MatchString(input) {
		return msgEmailRetry
	}
	e.candidate.Email = input
	e.state = StatePhone
	return "Great! **What's your phone number?**"
}

func (e *Engine) handlePhone(input string) string {
	if !phonePattern.MatchString(input) {
		return msgPhoneRetry
	}
	e.candidate.Phone = input
	e.state = StateExperience
	return "Perfect! **How many years of professional experience do you have?**"
}

// handleExperience извлекает первую последовательность цифр из ввода,
// не требуя точного формата всего сообщения.
func (e *Engine) handleExperience(input string) string {
	if match := digitsRun.FindString(input); match != "" {
		years, err := strconv.Atoi(match)
		if err == nil && years >= 0 && years <= 50 {
			e.candidate.Experience = fmt.Sprintf("%d years", years)
			e.state = StatePosition
			return "Excellent! **What position(s) are you interested in or applying for?**"
		}
	}
	return msgExperienceRetry
}

func (e *Engine) handlePosition(input string) string {
	if len(input) < 2 {
		return msgPositionRetry
	}
	e.candidate.Position = input
	e.state = StateLocation
	return "Great choice! **What's your current location (city, country)?**"
}

func (e *Engine) handleLocation(input string) string {
	if len(input) < 2 {
		return msgLocationRetry
	}
	e.candidate.Location = input
	e.state = StateTechStack
	return msgTechStackPrompt
}

// handleTechStack разбирает список технологий и сразу задает первый
// технический вопрос: отдельный ход на подтверждение списка не тратится.
func (e *Engine) handleTechStack(input string) string {
	var techStack []string
	for _, part := range strings.Split(input, ",") {
		if tech := strings.TrimSpace(part); tech != "" {
			techStack = append(techStack, tech)
		}
	}
	if len(techStack) == 0 {
		return msgTechStackRetry
	}

	e.candidate.TechStack = techStack
	e.state = StateTechnicalQuestions
	e.currentTechIndex = 0
	return e.askNextQuestion()
}

// handleTechnicalQuestions принимает ответ на технический вопрос.
// Текст ответа не оценивается и не сохраняется; хранится только список
// заданных вопросов. Когда число заданных вопросов кратно questionsPerTech,
// происходит переход к следующей технологии.
func (e *Engine) handleTechnicalQuestions(_ string) string {
	if len(e.askedQuestions)%questionsPerTech == 0 {
		e.currentTechIndex++
		if e.currentTechIndex >= len(e.candidate.TechStack) {
			return e.completeAssessment()
		}
	}
	return e.askNextQuestion()
}

// askNextQuestion запрашивает очередной вопрос у банка и добавляет его
// в список заданных. Первый вопрос по технологии предваряется баннером.
func (e *Engine) askNextQuestion() string {
	technology := e.candidate.TechStack[e.currentTechIndex]
	askedForTech := len(e.askedQuestions) % questionsPerTech

	intro := ""
	if askedForTech == 0 {
		intro = fmt.Sprintf("\n🔧 **Technical Assessment: %s**\n\n"+
			"I'll ask you %d questions about %s. Please answer to the best of your ability.\n\n",
			technology, questionsPerTech, technology)
	}

	question := e.bank.Question(technology, askedForTech+1)
	e.askedQuestions = append(e.askedQuestions, question)

	return fmt.Sprintf("%s**Question %d (%s):** %s", intro, askedForTech+1, technology, question)
}

func (e *Engine) completeAssessment() string {
	e.state = StateCompleted

	var summary strings.Builder
	summary.WriteString("\n🎉 **Technical Assessment Complete!**\n\n")
	summary.WriteString(fmt.Sprintf("Thank you for answering the technical questions! I've assessed your knowledge across "+
		"%d technologies: %s.\n\n", len(e.candidate.TechStack), strings.Join(e.candidate.TechStack, ", ")))
	summary.WriteString("**Next Steps:**\n")
	summary.WriteString("• Our technical team will review your responses\n")
	summary.WriteString("• You'll receive an email within 2-3 business days with feedback\n")
	summary.WriteString("• If you advance, we'll schedule a technical interview\n")
	summary.WriteString("• For any questions, contact us at hr@talentscout.com\n\n")
	summary.WriteString("Is there anything else you'd like to know about the position or our company? ")
	summary.WriteString("Otherwise, you can type 'exit' to end our conversation.")

	return summary.String()
}

func (e *Engine) handleFallback() string {
	if e.state == StateCompleted {
		return msgScreeningComplete
	}
	return msgNotUnderstood
}

// Terminate принудительно завершает диалог из любого состояния и возвращает
// прощальное сообщение. Вызывается хостом при распознавании ключевого слова
// завершения; в этот момент хост передает собранную анкету в хранилище.
func (e *Engine) Terminate() string {
	e.state = StateEnded

	var message strings.Builder
	message.WriteString("\n👋 **Thank you for your time!**\n\n")
	if e.candidate.Name != "" {
		message.WriteString("I've recorded all the information you provided. ")
	}
	message.WriteString("Our team will review your details and get back to you soon.\n\n")
	message.WriteString("**Next Steps:**\n")
	message.WriteString("• Check your email for confirmation and next steps\n")
	message.WriteString("• Our team will contact you within 2-3 business days\n")
	message.WriteString("• Keep an eye out for updates about your application status\n\n")
	message.WriteString("**Contact Information:**\n")
	message.WriteString("📧 hr@talentscout.com\n")
	message.WriteString("📱 +1 (555) 123-4567\n")
	message.WriteString("🌐 www.talentscout.com\n\n")
	message.WriteString("Good luck with your application! 🍀")

	return message.String()
}

// Progress возвращает процент прохождения диалога, производный от позиции
// текущего состояния в фиксированном списке. Состояние ended в списке
// отсутствует и дает 0.
func (e *Engine) Progress() int {
	for i, state := range stateOrder {
		if state == e.state {
			return i * 100 / len(stateOrder)
		}
	}
	return 0
}

// State возвращает текущее состояние диалога.
func (e *Engine) State() State {
	return e.state
}

// Candidate возвращает копию собираемой анкеты кандидата.
func (e *Engine) Candidate() storage.CandidateRecord {
	record := e.candidate
	record.TechStack = append([]string(nil), e.candidate.TechStack...)
	return record
}

// AskedQuestions возвращает список заданных технических вопросов
// в порядке их появления в диалоге.
func (e *Engine) AskedQuestions() []string {
	return append([]string(nil), e.askedQuestions...)
}
