package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadQuestionBank загружает дополнительные вопросы из YAML файла.
func LoadQuestionBank(filename string) (*QuestionBankFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", filename, err)
	}

	var bankFile QuestionBankFile
	if err := yaml.Unmarshal(data, &bankFile); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if err := validateQuestionBank(&bankFile); err != nil {
		return nil, fmt.Errorf("validate question bank: %w", err)
	}

	return &bankFile, nil
}

// validateQuestionBank проверяет корректность файла с вопросами.
func validateQuestionBank(bankFile *QuestionBankFile) error {
	for i, tech := range bankFile.Technologies {
		if tech.Name == "" {
			return fmt.Errorf("technology %d must have a name", i)
		}

		total := 0
		for _, questions := range tech.questionLists() {
			for _, question := range questions {
				if question == "" {
					return fmt.Errorf("technology %q contains an empty question", tech.Name)
				}
				total++
			}
		}
		if total == 0 {
			return fmt.Errorf("technology %q must have at least one question", tech.Name)
		}
	}
	return nil
}
