// Package stats tracks per-item view counters.
package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/eunyuson/graceroom/internal/db"
	"github.com/eunyuson/graceroom/internal/domain/item"
)

// store is the consumer interface for counters (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
}

// Repo implements view counters on plain integer keys.
type Repo struct {
	store  store
	prefix string
}

// New creates a stats repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Increment bumps the view counter of one item.
func (r *Repo) Increment(ctx context.Context, source item.Source, id string) error {
	key := r.key(source, id)
	if err := r.store.IncrBy(ctx, key, 1); err != nil {
		return fmt.Errorf("incrby %s: %w", key, err)
	}
	return nil
}

// Views returns the view counter of one item; 0 when never viewed.
func (r *Repo) Views(ctx context.Context, source item.Source, id string) (int64, error) {
	key := r.key(source, id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse counter %s: %w", key, err)
	}
	return n, nil
}

func (r *Repo) key(source item.Source, id string) string {
	return r.prefix + "views:" + string(source) + ":" + id
}
