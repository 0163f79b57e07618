package domain

import (
	"fmt"
	"strings"

	apperrors "studyhub/internal/platform/errors"
)

type Category string

const (
	CategoryIdioms  Category = "idioms"
	CategoryPhrasal Category = "phrasal"
	CategoryDaily   Category = "daily"
)

// Categories is the display order of the hub tabs.
var Categories = []Category{CategoryIdioms, CategoryPhrasal, CategoryDaily}

func (c Category) Validate() error {
	for _, known := range Categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown vocabulary category %q", apperrors.ErrInvalidInput, c)
}

// Entry is a built-in word. Built-ins carry no id and cannot be removed.
type Entry struct {
	Term    string `yaml:"term"`
	Meaning string `yaml:"meaning"`
	Example string `yaml:"example"`
	Origin  string `yaml:"origin"`
}

// Item is a user-added word as persisted.
type Item struct {
	ID        string   `json:"id" validate:"required"`
	Term      string   `json:"term" validate:"required"`
	Meaning   string   `json:"meaning" validate:"required"`
	Example   string   `json:"example,omitempty"`
	Origin    string   `json:"origin,omitempty"`
	Category  Category `json:"category"`
	CreatedAt string   `json:"createdAt"`
}

// Row is one visible line of the hub.
type Row struct {
	ID        string
	Term      string
	Meaning   string
	Example   string
	Origin    string
	Category  Category
	UserAdded bool
}

// Merge lists the category's built-ins followed by the user's entries for
// that category in insertion order.
func Merge(builtins []Entry, items []Item, category Category) []Row {
	rows := make([]Row, 0, len(builtins)+len(items))
	for _, e := range builtins {
		rows = append(rows, Row{Term: e.Term, Meaning: e.Meaning, Example: e.Example, Origin: e.Origin, Category: category})
	}
	for _, it := range items {
		if it.Category != category {
			continue
		}
		rows = append(rows, Row{
			ID:        it.ID,
			Term:      it.Term,
			Meaning:   it.Meaning,
			Example:   it.Example,
			Origin:    it.Origin,
			Category:  it.Category,
			UserAdded: true,
		})
	}
	return rows
}

// Search keeps rows whose term or meaning contains query, ignoring case.
// Examples and origins are not searched.
func Search(query string, rows []Row) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := []Row{}
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Term), q) || strings.Contains(strings.ToLower(r.Meaning), q) {
			out = append(out, r)
		}
	}
	return out
}

func Remove(items []Item, id string) ([]Item, bool) {
	out := make([]Item, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return items, false
	}
	return out, true
}
