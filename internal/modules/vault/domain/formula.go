package domain

import (
	"strings"

	"studyhub/internal/platform/slug"
)

type Formula struct {
	Name        string `yaml:"name"`
	Latex       string `yaml:"latex"`
	Description string `yaml:"description,omitempty"`
}

type Subtopic struct {
	Name     string    `yaml:"name"`
	Formulas []Formula `yaml:"formulas"`
}

type Category struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Subtopics []Subtopic `yaml:"subtopics"`
}

// Topic addresses one subtopic by a slug of its name.
type Topic struct {
	ID            string
	Name          string
	CategoryID    string
	CategoryTitle string
	Count         int
}

func Count(categories []Category) int {
	n := 0
	for _, c := range categories {
		for _, s := range c.Subtopics {
			n += len(s.Formulas)
		}
	}
	return n
}

// Search keeps formulas whose name or latex contains query, ignoring case. A
// subtopic whose name matches keeps all of its formulas. Empty subtopics and
// categories are pruned.
func Search(categories []Category, query string) []Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return categories
	}
	out := []Category{}
	for _, c := range categories {
		kept := Category{ID: c.ID, Title: c.Title}
		for _, s := range c.Subtopics {
			if strings.Contains(strings.ToLower(s.Name), q) {
				kept.Subtopics = append(kept.Subtopics, s)
				continue
			}
			sub := Subtopic{Name: s.Name}
			for _, f := range s.Formulas {
				if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Latex), q) {
					sub.Formulas = append(sub.Formulas, f)
				}
			}
			if len(sub.Formulas) > 0 {
				kept.Subtopics = append(kept.Subtopics, sub)
			}
		}
		if len(kept.Subtopics) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

func Topics(categories []Category) []Topic {
	out := []Topic{}
	for _, c := range categories {
		for _, s := range c.Subtopics {
			out = append(out, Topic{
				ID:            slug.Make(s.Name),
				Name:          s.Name,
				CategoryID:    c.ID,
				CategoryTitle: c.Title,
				Count:         len(s.Formulas),
			})
		}
	}
	return out
}

// FindTopic resolves a topic id, or a category id, to its formulas.
func FindTopic(categories []Category, id string) (Topic, []Formula, bool) {
	for _, c := range categories {
		if c.ID == id {
			all := []Formula{}
			for _, s := range c.Subtopics {
				all = append(all, s.Formulas...)
			}
			return Topic{ID: c.ID, Name: c.Title, CategoryID: c.ID, CategoryTitle: c.Title, Count: len(all)}, all, true
		}
		for _, s := range c.Subtopics {
			if slug.Make(s.Name) == id {
				return Topic{ID: id, Name: s.Name, CategoryID: c.ID, CategoryTitle: c.Title, Count: len(s.Formulas)}, s.Formulas, true
			}
		}
	}
	return Topic{}, nil, false
}

// Card is one flashcard face: the prompt is the formula name, the answer its
// latex and description.
type Card struct {
	Topic       string
	Name        string
	Latex       string
	Description string
}
