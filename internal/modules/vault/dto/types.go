package dto

type FormulaOutput struct {
	Name        string
	Latex       string
	Description string
}

type SubtopicOutput struct {
	ID       string
	Name     string
	Formulas []FormulaOutput
}

type CategoryOutput struct {
	ID        string
	Title     string
	Subtopics []SubtopicOutput
}

type SearchOutput struct {
	Categories []CategoryOutput
	Matches    int
	Total      int
}

type TopicOutput struct {
	ID            string
	Name          string
	CategoryID    string
	CategoryTitle string
	Count         int
}

type TopicDetailOutput struct {
	Topic    TopicOutput
	Formulas []FormulaOutput
}

type CardOutput struct {
	Topic       string
	Name        string
	Latex       string
	Description string
}
