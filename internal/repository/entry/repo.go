// Package entry persists the content items of one source collection as JSON
// documents.
package entry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eunyuson/graceroom/internal/db"
	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/item"
)

// store is the consumer interface for content entries (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements persistence for one content collection.
type Repo struct {
	store  store
	source item.Source
	prefix string
}

// New creates a repository bound to a single source collection.
// prefix is the global key prefix, e.g. "graceroom:".
func New(s store, source item.Source, prefix string) *Repo {
	return &Repo{store: s, source: source, prefix: prefix}
}

// Put creates or replaces an item. Returns true if created.
func (r *Repo) Put(ctx context.Context, it item.Item) (bool, error) {
	key := r.key(it.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	data, err := marshalRecord(it)
	if err != nil {
		return false, fmt.Errorf("marshal item: %w", err)
	}
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns an item by ID.
func (r *Repo) Get(ctx context.Context, id string) (item.Item, error) {
	key := r.key(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return item.Item{}, domain.ErrItemNotFound
		}
		return item.Item{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return unmarshalRecord(r.source, id, raw)
}

// Delete removes an item.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrItemNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// FetchAll returns a snapshot of the whole collection: SCAN for keys, then
// one pipelined multi-get. Keys are sorted so snapshots of identical state
// are identical. Documents deleted between the scan and the read are skipped.
func (r *Repo) FetchAll(ctx context.Context) ([]item.Item, error) {
	keys, err := r.store.Scan(ctx, r.pattern())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.pattern(), err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	raws, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("json.get multi: %w", err)
	}

	items := make([]item.Item, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		id := r.idFromKey(keys[i])
		it, err := unmarshalRecord(r.source, id, raw)
		if err != nil {
			// Partial or malformed remote documents are expected;
			// keep the item with whatever fields survived.
			it = item.Reconstruct(r.source, id, "", "", "", it.CreatedAt())
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *Repo) key(id string) string {
	return r.prefix + string(r.source) + ":" + id
}

func (r *Repo) pattern() string {
	return r.prefix + string(r.source) + ":*"
}

func (r *Repo) idFromKey(key string) string {
	return strings.TrimPrefix(key, r.prefix+string(r.source)+":")
}
