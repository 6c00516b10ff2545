// Package related groups content items by how similar their question is to a
// query question. It is pure: no I/O, no shared state, no error path.
package related

import (
	"sort"

	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/similarity"
)

// DefaultThreshold is the minimum score an item must reach to count as
// related when the caller does not supply its own cutoff.
const DefaultThreshold = 0.2

// Match pairs an item with its score against the query.
type Match struct {
	item  item.Item
	score float64
}

// NewMatch creates a match.
func NewMatch(it item.Item, score float64) Match {
	return Match{item: it, score: score}
}

// Item returns the matched item.
func (m *Match) Item() item.Item { return m.item }

// Score returns the similarity score in [0,1].
func (m *Match) Score() float64 { return m.score }

// Exclude names the item a query originates from, so it never matches itself.
// The zero value excludes nothing.
type Exclude struct {
	Source item.Source
	ID     string
}

// Aggregate scores every candidate question against query and returns the
// matches with score >= threshold, grouped by source, each group in strictly
// descending score order with ties broken by original candidate order.
//
// Candidates without a question are skipped rather than failing: partial
// documents are expected from an eventually-consistent remote store. The
// candidate matching exclude is omitted regardless of score. Empty candidates
// yield an empty grouping; a query with no tokens scores 0 against everything
// and likewise yields an empty grouping.
func Aggregate(
	query string, candidates []item.Item, threshold float64, exclude Exclude,
) map[item.Source][]Match {
	groups := make(map[item.Source][]Match)

	for _, cand := range candidates {
		if cand.Question() == "" {
			continue
		}
		if exclude.ID != "" && cand.ID() == exclude.ID && cand.Source() == exclude.Source {
			continue
		}

		score := similarity.Score(query, cand.Question())
		if score < threshold {
			continue
		}
		groups[cand.Source()] = append(groups[cand.Source()], NewMatch(cand, score))
	}

	// Stable sort keeps candidate order on equal scores, so identical
	// inputs always produce identical output.
	for _, matches := range groups {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score() > matches[j].Score()
		})
	}

	return groups
}
