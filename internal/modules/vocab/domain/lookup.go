package domain

import "strings"

// Definition is the first usable answer from a dictionary.
type Definition struct {
	Definition string
	Example    string
}

// CleanTerm normalises user input into a dictionary query.
func CleanTerm(raw string) string {
	term := strings.ToLower(strings.TrimSpace(raw))
	term = strings.TrimPrefix(term, "to ")
	return strings.TrimSpace(term)
}
