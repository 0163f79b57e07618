package dto

type AddInput struct {
	MockName string
	ExamType string
	Date     string
	SA       string
	MCQ      string
	QA       string
	VA       string
	LR       string
}

const (
	ExamIndore = "INDORE"
	ExamRohtak = "ROHTAK"
	ExamJIPMAT = "JIPMAT"
)

const (
	SortByDate  = "date"
	SortByTotal = "totalScore"
	Asc         = "asc"
	Desc        = "desc"
)

// ListInput orders a listing. Empty fields mean date, newest first.
type ListInput struct {
	SortField string
	Direction string
}

// Select applies a header click: the same field flips direction, a new field
// starts descending.
func (in ListInput) Select(field string) ListInput {
	current, direction := in.SortField, in.Direction
	if current == "" {
		current = SortByDate
	}
	if direction == "" {
		direction = Desc
	}
	if current != field {
		return ListInput{SortField: field, Direction: Desc}
	}
	if direction == Asc {
		return ListInput{SortField: field, Direction: Desc}
	}
	return ListInput{SortField: field, Direction: Asc}
}

type ScoreOutput struct {
	ID         string
	MockName   string
	ExamType   string
	Date       string
	Sections   map[string]int
	TotalScore int
}

type AddOutput struct {
	Score ScoreOutput
	Added bool
}

type ExamStats struct {
	ExamType string
	Count    int
	Average  int
	Best     int
}

type StatsOutput struct {
	Count   int
	Average int
	Best    int
	ByExam  []ExamStats
}
