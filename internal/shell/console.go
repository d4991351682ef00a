package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"talentscout-assistant/internal/chatbot"
	"talentscout-assistant/internal/metrics"
	"talentscout-assistant/internal/questionbank"
	"talentscout-assistant/internal/storage"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Console ведет диалог скрининга через стандартный ввод/вывод.
// Локальный презентационный слой: вся логика диалога остается в движке.
type Console struct {
	bank    *questionbank.Bank
	store   storage.Store
	metrics *metrics.Metrics
	in      io.Reader
	out     io.Writer
}

func NewConsole(bank *questionbank.Bank, store storage.Store, m *metrics.Metrics, in io.Reader, out io.Writer) *Console {
	return &Console{
		bank:    bank,
		store:   store,
		metrics: m,
		in:      in,
		out:     out,
	}
}

// Run проводит одну сессию скрининга от приветствия до завершения.
func (c *Console) Run() error {
	assistant := color.New(color.FgCyan, color.Bold)
	prompt := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	engine := chatbot.New(c.bank)
	sessionID := uuid.New().String()
	c.metrics.IncrementScreeningsStarted()

	fmt.Fprintf(c.out, "🎯 TalentScout Hiring Assistant (session %s)\n", sessionID)
	faint.Fprintln(c.out, "Type 'exit' at any time to finish the conversation.")
	fmt.Fprintln(c.out)

	assistant.Fprint(c.out, "Assistant: ")
	fmt.Fprintln(c.out, engine.Start())

	scanner := bufio.NewScanner(c.in)
	for {
		prompt.Fprint(c.out, "You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		// Завершение диалога распознается здесь, а не в движке.
		if chatbot.IsEndCommand(input) {
			c.finish(engine)
			return scanner.Err()
		}

		askedBefore := len(engine.AskedQuestions())
		stateBefore := engine.State()
		response := engine.Process(input)
		c.metrics.AddQuestionsAsked(len(engine.AskedQuestions()) - askedBefore)

		if stateBefore != chatbot.StateCompleted && engine.State() == chatbot.StateCompleted {
			c.metrics.IncrementScreeningsCompleted()
		}

		assistant.Fprint(c.out, "Assistant: ")
		fmt.Fprintln(c.out, response)
		faint.Fprintf(c.out, "[progress: %d%%]\n\n", engine.Progress())
	}

	// Ввод закончился без ключевого слова: завершаем сессию корректно.
	c.finish(engine)
	return scanner.Err()
}

// finish завершает диалог, сохраняет анкету и печатает итоговую сводку.
// Ошибка сохранения логируется; прощальное сообщение выводится в любом случае.
func (c *Console) finish(engine *chatbot.Engine) {
	assistant := color.New(color.FgCyan, color.Bold)

	farewell := engine.Terminate()

	record := engine.Candidate()
	record.TechnicalQuestions = engine.AskedQuestions()

	if err := c.store.Upsert(&record); err != nil {
		log.Printf("console: save candidate record: %v", err)
		c.metrics.IncrementRecordSave(false)
	} else {
		c.metrics.IncrementRecordSave(true)
		fmt.Fprintf(c.out, "\n✅ Application recorded. Reference: %s\n", record.CandidateID)
	}

	assistant.Fprint(c.out, "Assistant: ")
	fmt.Fprintln(c.out, farewell)

	c.printSummary(record)
}

// printSummary выводит собранную информацию и заданные вопросы,
// как это делала итоговая панель веб-интерфейса.
func (c *Console) printSummary(record storage.CandidateRecord) {
	if record.Name == "" {
		return
	}

	fmt.Fprintln(c.out, "\n📋 Collected Information")
	fmt.Fprintf(c.out, "  Name:       %s\n", record.Name)
	if record.Email != "" {
		fmt.Fprintf(c.out, "  Email:      %s\n", record.Email)
	}
	if record.Phone != "" {
		fmt.Fprintf(c.out, "  Phone:      %s\n", record.Phone)
	}
	if record.Experience != "" {
		fmt.Fprintf(c.out, "  Experience: %s\n", record.Experience)
	}
	if record.Position != "" {
		fmt.Fprintf(c.out, "  Position:   %s\n", record.Position)
	}
	if record.Location != "" {
		fmt.Fprintf(c.out, "  Location:   %s\n", record.Location)
	}
	if len(record.TechStack) > 0 {
		fmt.Fprintf(c.out, "  Tech Stack: %s\n", strings.Join(record.TechStack, ", "))
	}

	if len(record.TechnicalQuestions) > 0 {
		fmt.Fprintln(c.out, "\n🔧 Technical Questions Asked")
		for i, question := range record.TechnicalQuestions {
			fmt.Fprintf(c.out, "  %d. %s\n", i+1, question)
		}
	}
}
