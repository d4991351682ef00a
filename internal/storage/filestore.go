package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileRecord является форматом записи на диске: анкета плюс
// псевдонимизированные поля.
type fileRecord struct {
	CandidateRecord
	PhoneMasked string `json:"phone_masked,omitempty"`
	PhoneHash   string `json:"phone_hash,omitempty"`
	EmailMasked string `json:"email_masked,omitempty"`
	EmailHash   string `json:"email_hash,omitempty"`
}

// FileStore хранит анкеты кандидатов в JSON файлах, по одному на кандидата.
// Файловый вариант Store; при включенной псевдонимизации телефон заменяется
// маской и дайджестом, email дополняется маской.
type FileStore struct {
	dir           string
	retentionDays int
	pseudonymize  bool
}

// NewFileStore создает файловое хранилище в указанной директории.
func NewFileStore(dir string, retentionDays int, pseudonymize bool) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, retentionDays: retentionDays, pseudonymize: pseudonymize}, nil
}

func (f *FileStore) filePath(candidateID string) string {
	return filepath.Join(f.dir, fmt.Sprintf("candidate_%s.json", candidateID))
}

// Upsert записывает анкету кандидата в файл. Имя файла детерминировано
// выводится из идентификатора, поэтому повторное сохранение перезаписывает
// предыдущую версию. После записи выполняется чистка просроченных файлов.
func (f *FileStore) Upsert(record *CandidateRecord) error {
	if err := Validate(record); err != nil {
		return err
	}

	if record.CandidateID == "" {
		record.CandidateID = CandidateID(record.Email, record.Name)
	}
	now := time.Now().UTC()
	record.UpdatedAt = now
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.ExpiresAt = record.CreatedAt.Add(time.Duration(f.retentionDays) * 24 * time.Hour)

	stored := fileRecord{CandidateRecord: *record}
	if f.pseudonymize {
		applyPseudonymization(&stored)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encode candidate %s: %w", record.CandidateID, err)
	}
	if err := os.WriteFile(f.filePath(record.CandidateID), data, 0644); err != nil {
		return fmt.Errorf("write candidate %s: %w", record.CandidateID, err)
	}

	if removed, err := f.CleanupExpired(); err != nil {
		log.Printf("file store: cleanup expired: %v", err)
	} else if removed > 0 {
		log.Printf("file store: removed %d expired data files", removed)
	}
	return nil
}

// applyPseudonymization маскирует чувствительные поля перед записью.
// Телефон удаляется и заменяется маской с последними четырьмя символами;
// email сохраняется для связи с кандидатом, но дополняется маской.
func applyPseudonymization(stored *fileRecord) {
	if phone := stored.Phone; len(phone) > 6 {
		stored.PhoneMasked = strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
		stored.PhoneHash = digest(phone)
		stored.Phone = ""
	}

	if email := stored.Email; email != "" {
		at := strings.LastIndex(email, "@")
		if at > 2 {
			username, domain := email[:at], email[at+1:]
			masked := username[:1] + strings.Repeat("*", len(username)-2) + username[len(username)-1:]
			stored.EmailMasked = masked + "@" + domain
			stored.EmailHash = digest(email)
		}
	}
}

// digest возвращает укороченный криптографический дайджест значения.
func digest(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:16]
}

// GetByID читает запись кандидата из файла.
func (f *FileStore) GetByID(candidateID string) (*CandidateRecord, error) {
	data, err := os.ReadFile(f.filePath(candidateID))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read candidate %s: %w", candidateID, err)
	}

	var stored fileRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode candidate %s: %w", candidateID, err)
	}
	record := stored.CandidateRecord
	return &record, nil
}

// DeleteByID удаляет все файлы кандидата и сообщает, было ли что-то удалено.
func (f *FileStore) DeleteByID(candidateID string) (bool, error) {
	matches, err := filepath.Glob(filepath.Join(f.dir, fmt.Sprintf("candidate_%s*.json", candidateID)))
	if err != nil {
		return false, fmt.Errorf("glob candidate %s: %w", candidateID, err)
	}

	deleted := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return deleted > 0, fmt.Errorf("delete %s: %w", path, err)
		}
		deleted++
	}
	return deleted > 0, nil
}

// CleanupExpired удаляет файлы с истекшим сроком хранения.
func (f *FileStore) CleanupExpired() (int, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return 0, fmt.Errorf("read data directory %s: %w", f.dir, err)
	}

	now := time.Now().UTC()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(f.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var stored fileRecord
		if err := json.Unmarshal(data, &stored); err != nil {
			continue
		}
		if !stored.ExpiresAt.IsZero() && stored.ExpiresAt.Before(now) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// Close у файлового хранилища не освобождает ресурсов.
func (f *FileStore) Close() error {
	return nil
}
