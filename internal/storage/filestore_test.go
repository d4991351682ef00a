package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T, pseudonymize bool) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), DefaultRetentionDays, pseudonymize)
	require.NoError(t, err)
	return store
}

func TestFileStoreUpsertAndGet(t *testing.T) {
	store := newTestFileStore(t, false)
	record := testRecord()

	require.NoError(t, store.Upsert(record))
	require.NotEmpty(t, record.CandidateID)

	loaded, err := store.GetByID(record.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, record.Name, loaded.Name)
	assert.Equal(t, record.Phone, loaded.Phone)
	assert.Equal(t, record.TechStack, loaded.TechStack)
}

func TestFileStoreUpsertOverwrites(t *testing.T) {
	store := newTestFileStore(t, false)
	record := testRecord()
	require.NoError(t, store.Upsert(record))

	resubmitted := testRecord()
	resubmitted.Position = "Staff Engineer"
	require.NoError(t, store.Upsert(resubmitted))

	loaded, err := store.GetByID(record.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", loaded.Position)

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "resubmission must not create a second file")
}

func TestFileStorePseudonymization(t *testing.T) {
	store := newTestFileStore(t, true)
	record := testRecord()
	require.NoError(t, store.Upsert(record))

	data, err := os.ReadFile(filepath.Join(store.dir, "candidate_"+record.CandidateID+".json"))
	require.NoError(t, err)

	var stored fileRecord
	require.NoError(t, json.Unmarshal(data, &stored))

	assert.Empty(t, stored.Phone, "raw phone must not be stored")
	assert.Equal(t, "***********1111", stored.PhoneMasked)
	assert.NotEmpty(t, stored.PhoneHash)

	assert.Equal(t, "jane@x.com", stored.Email, "email is kept for recruitment contact")
	assert.Equal(t, "j**e@x.com", stored.EmailMasked)
	assert.NotEmpty(t, stored.EmailHash)
}

func TestFileStoreDeleteByID(t *testing.T) {
	store := newTestFileStore(t, false)
	record := testRecord()
	require.NoError(t, store.Upsert(record))

	deleted, err := store.DeleteByID(record.CandidateID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetByID(record.CandidateID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = store.DeleteByID(record.CandidateID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFileStoreCleanupExpired(t *testing.T) {
	store := newTestFileStore(t, false)

	fresh := testRecord()
	require.NoError(t, store.Upsert(fresh))

	expired := testRecord()
	expired.Email = "old@x.com"
	expired.CreatedAt = time.Now().UTC().Add(-(DefaultRetentionDays + 1) * 24 * time.Hour)
	require.NoError(t, store.Upsert(expired))

	// Просроченный файл удаляется чисткой сразу после записи
	_, err := store.GetByID(expired.CandidateID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByID(fresh.CandidateID)
	assert.NoError(t, err)
}
