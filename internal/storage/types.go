package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultRetentionDays задает срок хранения записей кандидатов по умолчанию.
const DefaultRetentionDays = 90

// ErrNotFound возвращается, когда запись кандидата не найдена в хранилище.
var ErrNotFound = errors.New("candidate not found")

// CandidateRecord представляет итоговую анкету одного скрининга.
type CandidateRecord struct {
	CandidateID        string    `json:"candidate_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Experience         string    `json:"experience,omitempty"`
	Position           string    `json:"position,omitempty"`
	Location           string    `json:"location,omitempty"`
	TechStack          []string  `json:"tech_stack,omitempty"`
	TechnicalQuestions []string  `json:"technical_questions,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// Store описывает контракт долговременного хранилища анкет кандидатов.
// Ошибки хранилища возвращаются явно и никогда не прерывают активный диалог:
// хост логирует их и продолжает работу.
type Store interface {
	// Upsert сохраняет анкету; повторная отправка тем же кандидатом
	// обновляет существующую запись по детерминированному идентификатору.
	Upsert(record *CandidateRecord) error
	// GetByID возвращает запись кандидата или ErrNotFound.
	GetByID(candidateID string) (*CandidateRecord, error)
	// DeleteByID удаляет все записи кандидата (право на забвение)
	// и сообщает, было ли что-то удалено.
	DeleteByID(candidateID string) (bool, error)
	// CleanupExpired удаляет записи с истекшим сроком хранения
	// и возвращает число удаленных.
	CleanupExpired() (int, error)
	Close() error
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CandidateID выводит стабильный идентификатор кандидата из email и имени:
// одинаковые данные всегда дают один и тот же идентификатор, что позволяет
// обновлять запись при повторной отправке анкеты.
func CandidateID(email, name string) string {
	combined := strings.ReplaceAll(strings.ToLower(email+name), " ", "")
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:])[:8]
}

// Validate проверяет обязательные поля анкеты перед сохранением.
func Validate(record *CandidateRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("missing required field: name")
	}
	if strings.TrimSpace(record.Email) == "" {
		return fmt.Errorf("missing required field: email")
	}
	if !emailPattern.MatchString(record.Email) {
		return fmt.Errorf("invalid email format: %s", record.Email)
	}
	return nil
}
