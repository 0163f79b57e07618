package dto

type DigestOutput struct {
	DaysUntilExam int
	PendingGoals  []string
	GoalsTotal    int
	LoggedToday   bool
	Lines         []string
}

type ScheduleInput struct {
	At    string
	Every string
}

type ScheduleOutput struct {
	Spec string
}
