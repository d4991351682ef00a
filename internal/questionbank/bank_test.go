package questionbank

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionTierMapping(t *testing.T) {
	bank := New()

	tests := []struct {
		name     string
		number   int
		expected string
	}{
		{
			name:     "number 1 is basic",
			number:   1,
			expected: "What are the key differences between lists and tuples in Python?",
		},
		{
			name:     "number 2 is intermediate",
			number:   2,
			expected: "Explain the concept of generators and their advantages over regular functions.",
		},
		{
			name:     "number 3 is advanced",
			number:   3,
			expected: "How would you optimize Python code for better performance?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bank.Question("python", tt.number))
		})
	}
}

func TestQuestionIdempotence(t *testing.T) {
	bank := New()

	first := bank.Question("python", 1)
	second := bank.Question("python", 1)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestQuestionCycling(t *testing.T) {
	bank := New()

	// Номера за пределами списка уровня циклически повторяют его:
	// номер 5 попадает в уровень по умолчанию (intermediate) на ту же
	// позицию, что и номер 2.
	assert.Equal(t, bank.Question("python", 2), bank.Question("python", 5))
	assert.Equal(t, bank.Question("sql", 2), bank.Question("sql", 5))
}

func TestQuestionCaseInsensitiveLookup(t *testing.T) {
	bank := New()

	assert.Equal(t, bank.Question("python", 1), bank.Question("Python", 1))
	assert.Equal(t, bank.Question("python", 1), bank.Question("  PYTHON  ", 1))
}

func TestQuestionSubstringMatch(t *testing.T) {
	bank := New()

	tests := []struct {
		name       string
		technology string
		resolved   string
	}{
		{
			name:       "input contains table key",
			technology: "Python 3.12",
			resolved:   "python",
		},
		{
			name:       "framework resolves to base entry",
			technology: "React Native",
			resolved:   "react",
		},
		{
			// "javascript" не содержит подряд идущего "js"; первым по
			// порядку таблицы совпадает "node.js"
			name:       "table key contains input, first match wins",
			technology: "js",
			resolved:   "node.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, bank.Question(tt.resolved, 1), bank.Question(tt.technology, 1))
		})
	}
}

func TestQuestionUnknownTechnology(t *testing.T) {
	bank := New()

	question := bank.Question("CustomInternalFramework123", 2)

	require.NotEmpty(t, question)
	assert.Contains(t, question, "CustomInternalFramework123")
	assert.True(t, strings.HasSuffix(question, "?"))
}

func TestQuestionUnknownTechnologyAllTiers(t *testing.T) {
	bank := New()

	for number := 1; number <= 3; number++ {
		question := bank.Question("Frobnicator9000", number)
		require.NotEmpty(t, question)
		assert.Contains(t, question, "Frobnicator9000")
	}
}

func TestAddTechnology(t *testing.T) {
	bank := New()
	bank.AddTechnology("Elixir", []string{"What is a GenServer?"}, nil, nil)

	assert.Equal(t, "What is a GenServer?", bank.Question("elixir", 1))
	assert.Contains(t, bank.Technologies(), "elixir")
}

func TestAddTechnologyDoesNotOverrideBuiltin(t *testing.T) {
	bank := New()
	original := bank.Question("python", 1)

	other := New()
	other.AddTechnology("python", []string{"Replaced?"}, nil, nil)

	assert.Equal(t, original, other.Question("python", 1))
}

func TestAddTechnologySingleListCycles(t *testing.T) {
	bank := New()
	bank.AddTechnology("zig", []string{"What is comptime in Zig?"}, nil, nil)

	// Уровень intermediate пуст: поиск по подстроке также дает пустой
	// список, поэтому используется универсальный шаблон.
	question := bank.Question("zig", 2)
	require.NotEmpty(t, question)
	assert.Contains(t, question, "zig")
}

func TestQuestionConcurrentAccess(t *testing.T) {
	bank := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for number := 1; number <= 3; number++ {
				bank.Question("python", number)
				bank.Question("unknown-tech", number)
			}
		}()
	}
	wg.Wait()

	assert.NotEmpty(t, bank.Question("python", 1))
}
