// Package hymn models the hymnal dataset and its browser filter.
package hymn

import "strconv"

// Hymn is one entry of the hymnal. The dataset is static and loaded at
// startup, so plain exported fields with YAML tags are enough.
type Hymn struct {
	Number   int    `yaml:"number" json:"number"`
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Lyrics   string `yaml:"lyrics,omitempty" json:"lyrics,omitempty"`
}

// Filter returns the hymns matching a category and a decimal number prefix,
// preserving input order. An empty category matches every category; an empty
// prefix matches every number. "1" matches 1, 12, 103 and so on.
func Filter(hymns []Hymn, category, numberPrefix string) []Hymn {
	out := make([]Hymn, 0, len(hymns))
	for _, h := range hymns {
		if category != "" && h.Category != category {
			continue
		}
		if numberPrefix != "" && !hasNumberPrefix(h.Number, numberPrefix) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func hasNumberPrefix(number int, prefix string) bool {
	s := strconv.Itoa(number)
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}
