package questionbank

import (
	"fmt"
	"strings"
	"sync"
)

// Tier представляет уровень сложности вопроса.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// tierForNumber сопоставляет порядковый номер вопроса уровню сложности.
func tierForNumber(number int) Tier {
	switch number {
	case 1:
		return TierBasic
	case 2:
		return TierIntermediate
	case 3:
		return TierAdvanced
	default:
		return TierIntermediate
	}
}

// Bank хранит статическую базу технических вопросов.
// Таблица неизменяема после инициализации; кэш результатов защищен мьютексом,
// так как банк разделяется между сессиями.
type Bank struct {
	keys  []string
	table map[string]map[Tier][]string

	mu    sync.Mutex
	cache map[string]string
}

// New создает банк вопросов со встроенной базой технологий.
func New() *Bank {
	b := &Bank{
		table: make(map[string]map[Tier][]string),
		cache: make(map[string]string),
	}
	for _, e := range builtinEntries {
		b.addEntry(e.name, e.questions)
	}
	return b
}

// AddTechnology добавляет технологию из внешней конфигурации.
// Встроенные записи не перезаписываются.
func (b *Bank) AddTechnology(name string, basic, intermediate, advanced []string) {
	questions := map[Tier][]string{
		TierBasic:        basic,
		TierIntermediate: intermediate,
		TierAdvanced:     advanced,
	}
	b.addEntry(strings.ToLower(strings.TrimSpace(name)), questions)
}

func (b *Bank) addEntry(name string, questions map[Tier][]string) {
	if name == "" {
		return
	}
	if _, exists := b.table[name]; exists {
		return
	}
	b.keys = append(b.keys, name)
	b.table[name] = questions
}

// Technologies возвращает список технологий в порядке добавления.
func (b *Bank) Technologies() []string {
	return append([]string(nil), b.keys...)
}

// Question возвращает технический вопрос для технологии и номера вопроса.
// Функция тотальна: при отсутствии технологии в базе используется
// подстрочный поиск, затем универсальные шаблоны. Повторный вызов с теми же
// аргументами всегда возвращает тот же вопрос (кэширование).
func (b *Bank) Question(technology string, number int) string {
	if number < 1 {
		number = 1
	}
	normalized := strings.ToLower(strings.TrimSpace(technology))
	cacheKey := fmt.Sprintf("%s_%d", normalized, number)

	b.mu.Lock()
	defer b.mu.Unlock()

	if question, ok := b.cache[cacheKey]; ok {
		return question
	}

	question := b.lookup(normalized, technology, number)
	b.cache[cacheKey] = question
	return question
}

func (b *Bank) lookup(normalized, technology string, number int) string {
	tier := tierForNumber(number)

	// Точное совпадение с таблицей
	if questions, ok := b.table[normalized]; ok {
		if question, ok := pick(questions[tier], number); ok {
			return question
		}
	}

	// Поиск по подстроке в обе стороны: близкие варианты (например, название
	// фреймворка, содержащее базовый язык) разрешаются в базовую запись.
	// Берется первое совпадение в порядке таблицы.
	for _, key := range b.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			if question, ok := pick(b.table[key][tier], number); ok {
				return question
			}
		}
	}

	// Универсальный шаблон для неизвестных технологий
	templates := genericTemplates[tier]
	return fmt.Sprintf(templates[(number-1)%len(templates)], technology)
}

// pick выбирает вопрос из списка по модулю: банк циклически повторяет свой
// набор, если запрошено больше вопросов, чем есть в списке.
func pick(questions []string, number int) (string, bool) {
	if len(questions) == 0 {
		return "", false
	}
	return questions[(number-1)%len(questions)], true
}
