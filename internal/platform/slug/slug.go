package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
	ampersand   = strings.NewReplacer("&", " and ", "+", " plus ")
)

// Make turns a topic label into a stable lowercase identifier, e.g.
// "Progression & Series" becomes "progression-and-series".
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = ampersand.Replace(s)
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
