package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS candidates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	candidate_id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	experience TEXT,
	position TEXT,
	location TEXT,
	tech_stack TEXT,
	technical_questions TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	expires_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_expires_at ON candidates(expires_at);
`

// SQLiteStore хранит анкеты кандидатов в реляционной таблице SQLite.
// Каноническая реализация Store.
type SQLiteStore struct {
	db            *sql.DB
	retentionDays int
}

// NewSQLiteStore открывает базу данных и инициализирует схему.
func NewSQLiteStore(dbPath string, retentionDays int) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db, retentionDays: retentionDays}, nil
}

// Upsert сохраняет анкету кандидата. Идентификатор выводится из email и
// имени, поэтому повторная отправка обновляет существующую запись на месте;
// created_at и expires_at при обновлении не меняются. После сохранения
// выполняется чистка просроченных записей.
func (s *SQLiteStore) Upsert(record *CandidateRecord) error {
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
	record.ExpiresAt = record.CreatedAt.Add(time.Duration(s.retentionDays) * 24 * time.Hour)

	techStack, err := json.Marshal(record.TechStack)
	if err != nil {
		return fmt.Errorf("encode tech stack: %w", err)
	}
	questions, err := json.Marshal(record.TechnicalQuestions)
	if err != nil {
		return fmt.Errorf("encode technical questions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO candidates (candidate_id, name, email, phone, experience, position,
			location, tech_stack, technical_questions, created_at, updated_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(candidate_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			experience = excluded.experience,
			position = excluded.position,
			location = excluded.location,
			tech_stack = excluded.tech_stack,
			technical_questions = excluded.technical_questions,
			updated_at = excluded.updated_at`,
		record.CandidateID, record.Name, record.Email, record.Phone, record.Experience,
		record.Position, record.Location, string(techStack), string(questions),
		record.CreatedAt, record.UpdatedAt, record.ExpiresAt)
	if err != nil {
		return fmt.Errorf("upsert candidate %s: %w", record.CandidateID, err)
	}

	if removed, err := s.CleanupExpired(); err != nil {
		log.Printf("sqlite store: cleanup expired: %v", err)
	} else if removed > 0 {
		log.Printf("sqlite store: removed %d expired candidate records", removed)
	}

	return nil
}

// GetByID возвращает запись кандидата по идентификатору.
func (s *SQLiteStore) GetByID(candidateID string) (*CandidateRecord, error) {
	row := s.db.QueryRow(`
		SELECT candidate_id, name, email, phone, experience, position,
			location, tech_stack, technical_questions, created_at, updated_at, expires_at
		FROM candidates WHERE candidate_id = ?`, candidateID)

	var record CandidateRecord
	var techStack, questions string
	err := row.Scan(&record.CandidateID, &record.Name, &record.Email, &record.Phone,
		&record.Experience, &record.Position, &record.Location, &techStack, &questions,
		&record.CreatedAt, &record.UpdatedAt, &record.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query candidate %s: %w", candidateID, err)
	}

	if err := json.Unmarshal([]byte(techStack), &record.TechStack); err != nil {
		return nil, fmt.Errorf("decode tech stack: %w", err)
	}
	if err := json.Unmarshal([]byte(questions), &record.TechnicalQuestions); err != nil {
		return nil, fmt.Errorf("decode technical questions: %w", err)
	}

	return &record, nil
}

// ListAll возвращает все сохраненные анкеты (для административных нужд).
func (s *SQLiteStore) ListAll() ([]*CandidateRecord, error) {
	rows, err := s.db.Query(`SELECT candidate_id FROM candidates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan candidate id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}

	records := make([]*CandidateRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DeleteByID удаляет запись кандидата и сообщает, была ли она найдена.
func (s *SQLiteStore) DeleteByID(candidateID string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM candidates WHERE candidate_id = ?`, candidateID)
	if err != nil {
		return false, fmt.Errorf("delete candidate %s: %w", candidateID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete candidate %s: %w", candidateID, err)
	}
	return affected > 0, nil
}

// CleanupExpired удаляет записи, у которых истек срок хранения.
func (s *SQLiteStore) CleanupExpired() (int, error) {
	result, err := s.db.Exec(`DELETE FROM candidates WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("cleanup expired candidates: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup expired candidates: %w", err)
	}
	return int(affected), nil
}

// Close закрывает соединение с базой данных.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
