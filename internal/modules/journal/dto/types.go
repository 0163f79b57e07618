package dto

type SaveInput struct {
	Date    string
	Content string
	Hours   string
	Minutes string
}

type LogOutput struct {
	ID           string
	Date         string
	Content      string
	StudyHours   int
	StudyMinutes int
}

type DayOutput struct {
	Log      LogOutput
	Found    bool
	Previous string
	Next     string
	HasNext  bool
	IsToday  bool
}

type DayTotalOutput struct {
	Date    string
	Minutes int
	Logged  bool
}

type WeekOutput struct {
	Days         []DayTotalOutput
	TotalMinutes int
	DaysLogged   int
}

type ExportOutput struct {
	Written   []string
	Unchanged int
}
