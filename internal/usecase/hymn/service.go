// Package hymn serves the hymn browser over the in-memory hymnal.
package hymn

import (
	domhymn "github.com/eunyuson/graceroom/internal/domain/hymn"
)

// Service filters the static hymn dataset. The dataset is loaded once at
// startup and never mutated, so no locking is needed.
type Service struct {
	hymns []domhymn.Hymn
}

// New creates a hymn service over the loaded dataset.
func New(hymns []domhymn.Hymn) *Service {
	return &Service{hymns: hymns}
}

// Browse returns the hymns matching a category and number prefix,
// in dataset order. Empty filters match everything.
func (s *Service) Browse(category, numberPrefix string) []domhymn.Hymn {
	return domhymn.Filter(s.hymns, category, numberPrefix)
}

// Categories returns the distinct categories in dataset order.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, h := range s.hymns {
		if _, ok := seen[h.Category]; ok {
			continue
		}
		seen[h.Category] = struct{}{}
		out = append(out, h.Category)
	}
	return out
}
