package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:", DefaultRetentionDays)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord() *CandidateRecord {
	return &CandidateRecord{
		Name:               "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+1 555 000 1111",
		Experience:         "3 years",
		Position:           "Backend Engineer",
		Location:           "Berlin, Germany",
		TechStack:          []string{"Python", "SQL"},
		TechnicalQuestions: []string{"What is a tuple?", "What is a JOIN?"},
	}
}

func TestNewSQLiteStore(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database with nested directory", dbPath: filepath.Join(t.TempDir(), "nested", "candidates.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewSQLiteStore(tt.dbPath, DefaultRetentionDays)
			require.NoError(t, err)
			require.NotNil(t, store)
			store.Close()
		})
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("", DefaultRetentionDays)
	require.Error(t, err)
}

func TestSQLiteUpsertAndGet(t *testing.T) {
	store := newTestSQLiteStore(t)
	record := testRecord()

	require.NoError(t, store.Upsert(record))
	require.NotEmpty(t, record.CandidateID)
	assert.Equal(t, CandidateID(record.Email, record.Name), record.CandidateID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, record.CreatedAt.Add(DefaultRetentionDays*24*time.Hour), record.ExpiresAt)

	loaded, err := store.GetByID(record.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, record.Name, loaded.Name)
	assert.Equal(t, record.Email, loaded.Email)
	assert.Equal(t, record.Phone, loaded.Phone)
	assert.Equal(t, []string{"Python", "SQL"}, loaded.TechStack)
	assert.Equal(t, record.TechnicalQuestions, loaded.TechnicalQuestions)
}

func TestSQLiteUpsertUpdatesInPlace(t *testing.T) {
	store := newTestSQLiteStore(t)
	record := testRecord()
	require.NoError(t, store.Upsert(record))
	firstCreated := record.CreatedAt

	resubmitted := testRecord()
	resubmitted.Position = "Staff Engineer"
	require.NoError(t, store.Upsert(resubmitted))
	assert.Equal(t, record.CandidateID, resubmitted.CandidateID)

	loaded, err := store.GetByID(record.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", loaded.Position)
	assert.Equal(t, firstCreated.Unix(), loaded.CreatedAt.Unix(), "created_at survives resubmission")

	all, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1, "resubmission must not create a second row")
}

func TestSQLiteUpsertRejectsInvalidRecord(t *testing.T) {
	store := newTestSQLiteStore(t)

	err := store.Upsert(&CandidateRecord{Name: "Jane Doe"})
	require.Error(t, err)

	all, err := store.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLiteGetByIDNotFound(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.GetByID("deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDeleteByID(t *testing.T) {
	store := newTestSQLiteStore(t)
	record := testRecord()
	require.NoError(t, store.Upsert(record))

	deleted, err := store.DeleteByID(record.CandidateID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetByID(record.CandidateID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = store.DeleteByID(record.CandidateID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}

func TestSQLiteCleanupExpired(t *testing.T) {
	store := newTestSQLiteStore(t)

	fresh := testRecord()
	require.NoError(t, store.Upsert(fresh))

	removed, err := store.CleanupExpired()
	require.NoError(t, err)
	assert.Zero(t, removed, "fresh records are retained")

	// Запись с датой создания за пределами срока хранения удаляется
	// оппортунистической чисткой сразу после сохранения.
	expired := testRecord()
	expired.Email = "old@x.com"
	expired.CreatedAt = time.Now().UTC().Add(-(DefaultRetentionDays + 1) * 24 * time.Hour)
	require.NoError(t, store.Upsert(expired))

	_, err = store.GetByID(expired.CandidateID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByID(fresh.CandidateID)
	assert.NoError(t, err, "cleanup only touches expired records")
}
