package dto

// Category keys accepted by ListInput and AddInput.
const (
	CategoryIdioms  = "idioms"
	CategoryPhrasal = "phrasal"
	CategoryDaily   = "daily"
)

type ListInput struct {
	Category string
	Query    string
}

type RowOutput struct {
	ID        string
	Term      string
	Meaning   string
	Example   string
	Origin    string
	Category  string
	UserAdded bool
}

type ListOutput struct {
	Rows      []RowOutput
	UserCount int
}

type AddInput struct {
	Term     string
	Meaning  string
	Example  string
	Origin   string
	Category string
}

type AddOutput struct {
	Row   RowOutput
	Added bool
}

type DefinitionOutput struct {
	Term       string
	Definition string
	Example    string
}
