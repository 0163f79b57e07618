package domain

import "fmt"

type Category string

const (
	CategoryQuants Category = "quants"
	CategoryVerbal Category = "verbal"
)

func (c Category) Validate() error {
	switch c {
	case CategoryQuants, CategoryVerbal:
		return nil
	default:
		return fmt.Errorf("unsupported category: %s", c)
	}
}

// Item is one syllabus topic. Ids and categories are fixed by the seed.
type Item struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Completed bool     `json:"completed"`
	Category  Category `json:"category"`
}

// Toggle flips Completed on the item with id. It reports false and returns
// items unchanged when no item matches.
func Toggle(items []Item, id string) ([]Item, bool) {
	for i := range items {
		if items[i].ID == id {
			out := append([]Item(nil), items...)
			out[i].Completed = !out[i].Completed
			return out, true
		}
	}
	return items, false
}

// PercentComplete is round(100*done/total), or 0 for no items.
func PercentComplete(items []Item) int {
	done := 0
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return Percent(done, len(items))
}

func PercentByCategory(items []Item, category Category) int {
	return PercentComplete(FilterByCategory(items, category))
}

func FilterByCategory(items []Item, category Category) []Item {
	out := []Item{}
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Percent rounds half up, matching how the dashboard has always shown it.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}
