package domain

import (
	"fmt"
	"math"
	"time"

	"studyhub/internal/platform/numparse"
)

type ExamType string

const (
	ExamIndore ExamType = "INDORE"
	ExamRohtak ExamType = "ROHTAK"
	ExamJIPMAT ExamType = "JIPMAT"
)

var ExamTypes = []ExamType{ExamIndore, ExamRohtak, ExamJIPMAT}

func (e ExamType) Validate() error {
	switch e {
	case ExamIndore, ExamRohtak, ExamJIPMAT:
		return nil
	default:
		return fmt.Errorf("unsupported exam type: %s", e)
	}
}

// Breakdown holds sectional marks. Which fields are present depends on the
// exam: INDORE has sa, mcq and va; ROHTAK and JIPMAT have qa, lr and va.
type Breakdown struct {
	SA  *int `json:"sa,omitempty"`
	MCQ *int `json:"mcq,omitempty"`
	QA  *int `json:"qa,omitempty"`
	VA  int  `json:"va"`
	LR  *int `json:"lr,omitempty"`
}

// Sections is the free-text form input for one mock attempt.
type Sections struct {
	SA  string
	MCQ string
	QA  string
	VA  string
	LR  string
}

type Score struct {
	ID         string    `json:"id" validate:"required"`
	MockName   string    `json:"mockName" validate:"required"`
	ExamType   ExamType  `json:"examType" validate:"oneof=INDORE ROHTAK JIPMAT"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Breakdown  Breakdown `json:"breakdown"`
	TotalScore int       `json:"totalScore"`
}

// MaxSectionMarks bounds a single section's marks in either direction.
const MaxSectionMarks = 1000

// Tally builds the breakdown for exam and sums exactly its sections.
// Unparseable marks count as 0; negative marks are kept. Each section is
// clamped to MaxSectionMarks.
func Tally(exam ExamType, in Sections) (Breakdown, int) {
	marks := func(raw string) int { return numparse.Bounded(raw, MaxSectionMarks) }
	va := marks(in.VA)
	b := Breakdown{VA: va}
	if exam == ExamIndore {
		sa, mcq := marks(in.SA), marks(in.MCQ)
		b.SA, b.MCQ = &sa, &mcq
		return b, sa + mcq + va
	}
	qa, lr := marks(in.QA), marks(in.LR)
	b.QA, b.LR = &qa, &lr
	return b, qa + va + lr
}

// Day parses the attempt date. Unreadable dates sort as the zero time.
func (s Score) Day() time.Time {
	t, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Average is the mean total rounded half up, or 0 for no scores.
func Average(scores []Score) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s.TotalScore
	}
	return int(math.Floor(float64(sum)/float64(len(scores)) + 0.5))
}

// Max is the highest total, or 0 for no scores.
func Max(scores []Score) int {
	if len(scores) == 0 {
		return 0
	}
	best := scores[0].TotalScore
	for _, s := range scores[1:] {
		if s.TotalScore > best {
			best = s.TotalScore
		}
	}
	return best
}

func Delete(scores []Score, id string) ([]Score, bool) {
	for i := range scores {
		if scores[i].ID == id {
			out := make([]Score, 0, len(scores)-1)
			out = append(out, scores[:i]...)
			return append(out, scores[i+1:]...), true
		}
	}
	return scores, false
}

func FilterByExam(scores []Score, exam ExamType) []Score {
	out := []Score{}
	for _, s := range scores {
		if s.ExamType == exam {
			out = append(out, s)
		}
	}
	return out
}
