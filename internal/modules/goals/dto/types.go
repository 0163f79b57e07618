package dto

type GoalOutput struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt string
}

type TodayOutput struct {
	Goals []GoalOutput
	Done  int
	Total int
}

type AddOutput struct {
	Goal  GoalOutput
	Added bool
}

type ToggleOutput struct {
	Goal  GoalOutput
	Found bool
}
