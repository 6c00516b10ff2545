// Package related answers "which items ask a similar question" across all
// content collections.
package related

import (
	"context"
	"fmt"

	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/related"
	"github.com/eunyuson/graceroom/internal/metrics"
)

// Service aggregates related-question matches over fresh collection snapshots.
// It holds no state between calls: every request re-fetches the candidates
// and recomputes from scratch (pull model, no incremental index).
type Service struct {
	sources map[item.Source]Snapshotter
}

// New creates a related-question service over the given collections.
func New(sources map[item.Source]Snapshotter) *Service {
	return &Service{sources: sources}
}

// Related fetches all collections, flattens them into one candidate list and
// groups the matches whose score reaches threshold. A threshold <= 0 falls
// back to related.DefaultThreshold. exclude omits the item the query
// originates from. A fetch failure of any collection fails the request.
func (s *Service) Related(
	ctx context.Context, query string, threshold float64, exclude related.Exclude,
) (map[item.Source][]related.Match, error) {
	if threshold > 1 {
		return nil, fmt.Errorf("%w: threshold must be at most 1, got %v", domain.ErrInvalidInput, threshold)
	}
	if threshold <= 0 {
		threshold = related.DefaultThreshold
	}

	// Fixed source order keeps the flattened candidate list, and therefore
	// tie-breaking, deterministic.
	var candidates []item.Item
	for _, src := range item.Sources() {
		repo, ok := s.sources[src]
		if !ok {
			continue
		}
		items, err := repo.FetchAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch %s candidates: %w", src, err)
		}
		candidates = append(candidates, items...)
	}

	groups := related.Aggregate(query, candidates, threshold, exclude)

	matched := 0
	for _, ms := range groups {
		matched += len(ms)
	}
	metrics.RelatedQueriesTotal.Inc()
	metrics.RelatedCandidatesScored.Observe(float64(len(candidates)))
	metrics.RelatedMatchesReturned.Observe(float64(matched))

	return groups, nil
}
