package dto

type ListInput struct {
	Category string
	Unit     string
}

type ItemOutput struct {
	ID        string
	Label     string
	Completed bool
	Category  string
	Unit      string
}

type ToggleOutput struct {
	Item  ItemOutput
	Found bool
}

type UnitOutput struct {
	Unit    string
	Done    int
	Total   int
	Percent int
}

type SummaryOutput struct {
	Overall int
	Quants  int
	Verbal  int
	Done    int
	Total   int
	Units   []UnitOutput
}
