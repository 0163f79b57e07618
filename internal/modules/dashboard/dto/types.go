package dto

import "time"

type CountdownOutput struct {
	Target  time.Time
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Passed  bool
}

type SummaryOutput struct {
	UserName      string
	Greeting      string
	DaysUntilExam int
	Countdown     CountdownOutput

	ProgressOverall int
	ProgressQuants  int
	ProgressVerbal  int
	TopicsDone      int
	TopicsTotal     int

	GoalsDone  int
	GoalsTotal int

	MockCount    int
	BestScore    int
	AverageScore int
	LatestScore  *int

	StudyMinutesToday int
	LoggedToday       bool
}
