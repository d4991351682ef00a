package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// exportView является публичным подмножеством полей анкеты для выгрузки.
type exportView struct {
	CandidateID string   `json:"candidate_id"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Experience  string   `json:"experience"`
	TechStack   []string `json:"tech_stack"`
	Timestamp   string   `json:"timestamp"`
}

// Export сериализует публичные поля анкеты кандидата в указанный формат
// ("json" или "txt") для выгрузки данных по запросу.
func Export(record *CandidateRecord, format string) (string, error) {
	if record == nil {
		return "", fmt.Errorf("record is nil")
	}

	view := exportView{
		CandidateID: record.CandidateID,
		Name:        record.Name,
		Position:    record.Position,
		Experience:  record.Experience,
		TechStack:   record.TechStack,
		Timestamp:   record.CreatedAt.Format(time.RFC3339),
	}

	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode export: %w", err)
		}
		return string(data), nil
	case "txt", "text":
		var lines []string
		lines = append(lines, "=== CANDIDATE DATA EXPORT ===")
		lines = append(lines, fmt.Sprintf("Candidate ID: %s", view.CandidateID))
		lines = append(lines, fmt.Sprintf("Name: %s", view.Name))
		lines = append(lines, fmt.Sprintf("Position: %s", view.Position))
		lines = append(lines, fmt.Sprintf("Experience: %s", view.Experience))
		lines = append(lines, fmt.Sprintf("Tech Stack: %s", strings.Join(view.TechStack, ", ")))
		lines = append(lines, fmt.Sprintf("Date: %s", view.Timestamp))
		lines = append(lines, "================================")
		return strings.Join(lines, "\n"), nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}
