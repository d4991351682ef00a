package shell

import (
	"bytes"
	"strings"
	"testing"

	"talentscout-assistant/internal/metrics"
	"talentscout-assistant/internal/questionbank"
	"talentscout-assistant/internal/storage"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore фиксирует сохраненные анкеты, не трогая файловую систему.
type memStore struct {
	records []storage.CandidateRecord
}

func (s *memStore) Upsert(record *storage.CandidateRecord) error {
	if err := storage.Validate(record); err != nil {
		return err
	}
	record.CandidateID = storage.CandidateID(record.Email, record.Name)
	s.records = append(s.records, *record)
	return nil
}

func (s *memStore) GetByID(candidateID string) (*storage.CandidateRecord, error) {
	for i := range s.records {
		if s.records[i].CandidateID == candidateID {
			return &s.records[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) DeleteByID(candidateID string) (bool, error) { return false, nil }
func (s *memStore) CleanupExpired() (int, error)                { return 0, nil }
func (s *memStore) Close() error                                { return nil }

func runConsole(t *testing.T, script []string) (*memStore, *metrics.Metrics, string) {
	t.Helper()
	color.NoColor = true

	store := &memStore{}
	m := metrics.NewMetrics()
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer

	console := NewConsole(questionbank.New(), store, m, in, &out)
	require.NoError(t, console.Run())
	return store, m, out.String()
}

func TestConsoleFullConversation(t *testing.T) {
	store, m, out := runConsole(t, []string{
		"Jane Doe",
		"jane@example.com",
		"+1 555 000 1111",
		"3 years",
		"Software Developer",
		"Berlin, Germany",
		"Python, SQL",
		"Lists are mutable, tuples are not.",
		"Generators yield values lazily.",
		"The GIL serializes bytecode execution.",
		"SELECT retrieves rows from a table.",
		"A primary key uniquely identifies a row.",
		"An index speeds up lookups.",
		"exit",
	})

	require.Len(t, store.records, 1)
	saved := store.records[0]
	assert.Equal(t, "Jane Doe", saved.Name)
	assert.Equal(t, []string{"Python", "SQL"}, saved.TechStack)
	assert.Len(t, saved.TechnicalQuestions, 6)
	assert.NotEmpty(t, saved.CandidateID)

	assert.Contains(t, out, "Technical Assessment: Python")
	assert.Contains(t, out, "Technical Assessment: SQL")
	assert.Contains(t, out, "✅ Application recorded. Reference: "+saved.CandidateID)
	assert.Contains(t, out, "📋 Collected Information")
	assert.Contains(t, out, "Tech Stack: Python, SQL")

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(1), snapshot.ScreeningsStarted)
	assert.Equal(t, int64(1), snapshot.ScreeningsCompleted)
	assert.Equal(t, int64(6), snapshot.QuestionsAsked)
	assert.Equal(t, int64(1), snapshot.RecordsSaved)
}

func TestConsoleEmbeddedEndKeywordTerminates(t *testing.T) {
	// Ключевое слово завершения распознается как подстрока: ответ
	// "Backend Engineer" содержит "end" и завершает сессию на месте
	store, _, out := runConsole(t, []string{
		"Jane Doe",
		"jane@example.com",
		"+1 555 000 1111",
		"3 years",
		"Backend Engineer",
	})

	require.Len(t, store.records, 1)
	saved := store.records[0]
	assert.Equal(t, "Jane Doe", saved.Name)
	assert.Empty(t, saved.Position, "the terminating input is not recorded as an answer")
	assert.Empty(t, saved.TechnicalQuestions)
	assert.Contains(t, out, "Thank you for your time")
	assert.NotContains(t, out, "Technical Assessment")
}

func TestConsoleEarlyExit(t *testing.T) {
	store, m, out := runConsole(t, []string{"quit"})

	// Нечего сохранять: имя не собрано, запись не проходит валидацию
	assert.Empty(t, store.records)
	assert.Contains(t, out, "Thank you for your time")

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(1), snapshot.ScreeningsStarted)
	assert.Equal(t, int64(0), snapshot.ScreeningsCompleted)
	assert.Equal(t, int64(1), snapshot.SaveFailures)
}

func TestConsoleEOFFinishesSession(t *testing.T) {
	store, _, out := runConsole(t, []string{
		"Jane Doe",
		"jane@example.com",
	})

	// Ввод оборвался: сессия завершается как при явном выходе
	require.Len(t, store.records, 1)
	assert.Equal(t, "Jane Doe", store.records[0].Name)
	assert.Contains(t, out, "Thank you")
}
