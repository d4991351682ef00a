package config

// QuestionBankFile представляет YAML файл с дополнительными технологиями
// для банка вопросов. Встроенная база банка им не перезаписывается.
type QuestionBankFile struct {
	Technologies []TechnologyQuestions `yaml:"technologies"`
}

// TechnologyQuestions содержит вопросы одной технологии по уровням сложности.
type TechnologyQuestions struct {
	Name         string   `yaml:"name"`
	Basic        []string `yaml:"basic"`
	Intermediate []string `yaml:"intermediate"`
	Advanced     []string `yaml:"advanced"`
}

// questionLists возвращает списки вопросов по уровням.
func (t *TechnologyQuestions) questionLists() [][]string {
	return [][]string{t.Basic, t.Intermediate, t.Advanced}
}
