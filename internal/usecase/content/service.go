// Package content manages CRUD over the question-bearing collections.
package content

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/logger"
)

// Service handles content items across all source collections.
type Service struct {
	repos map[item.Source]Repository
	stats StatsRecorder
}

// New creates a content service. stats can be nil to disable view counting.
func New(repos map[item.Source]Repository, stats StatsRecorder) *Service {
	return &Service{repos: repos, stats: stats}
}

// Put validates and stores an item. Returns the stored item and whether it
// was created (as opposed to replaced).
func (s *Service) Put(
	ctx context.Context, source item.Source, id, title, question, preview string,
) (item.Item, bool, error) {
	repo, err := s.repo(source)
	if err != nil {
		return item.Item{}, false, err
	}

	it, err := item.New(source, id, title, question, preview, time.Now().UTC())
	if err != nil {
		return item.Item{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	created, err := repo.Put(ctx, it)
	if err != nil {
		return item.Item{}, false, fmt.Errorf("put %s/%s: %w", source, id, err)
	}
	return it, created, nil
}

// Get returns an item and its view count, bumping the counter first.
// Counter failures are logged and ignored: a broken counter must not make
// content unreadable.
func (s *Service) Get(ctx context.Context, source item.Source, id string) (item.Item, int64, error) {
	repo, err := s.repo(source)
	if err != nil {
		return item.Item{}, 0, err
	}

	it, err := repo.Get(ctx, id)
	if err != nil {
		return item.Item{}, 0, err
	}

	var views int64
	if s.stats != nil {
		if err := s.stats.Increment(ctx, source, id); err != nil {
			logger.FromContext(ctx).Warn("increment views failed", zap.Error(err))
		}
		views, err = s.stats.Views(ctx, source, id)
		if err != nil {
			logger.FromContext(ctx).Warn("read views failed", zap.Error(err))
			views = 0
		}
	}
	return it, views, nil
}

// List returns a snapshot of one collection.
func (s *Service) List(ctx context.Context, source item.Source) ([]item.Item, error) {
	repo, err := s.repo(source)
	if err != nil {
		return nil, err
	}
	items, err := repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", source, err)
	}
	return items, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, source item.Source, id string) error {
	repo, err := s.repo(source)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *Service) repo(source item.Source) (Repository, error) {
	repo, ok := s.repos[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}
	return repo, nil
}
