// Package memo persists per-item memos. All memos of one content item live in
// a single hash keyed by the item, one field per memo, so listing is one
// HGETALL and deleting is one HDEL.
package memo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/memo"
)

// store is the consumer interface for memos (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
}

// Repo implements persistence for memos.
type Repo struct {
	store  store
	prefix string
}

// New creates a memo repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// record is the stored JSON shape of a memo field value.
type record struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Put stores a memo under its target item's hash.
func (r *Repo) Put(ctx context.Context, m memo.Memo) error {
	key := r.key(m.Source(), m.ItemID())
	data, err := json.Marshal(record{
		Author:    m.Author(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("marshal memo: %w", err)
	}
	if err := r.store.HSet(ctx, key, map[string]string{m.ID(): string(data)}); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// List returns the memos of one content item, oldest first.
func (r *Repo) List(ctx context.Context, source item.Source, itemID string) ([]memo.Memo, error) {
	key := r.key(source, itemID)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}

	memos := make([]memo.Memo, 0, len(fields))
	for id, raw := range fields {
		var rec record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			continue
		}
		memos = append(memos, memo.Reconstruct(source, itemID, id, rec.Author, rec.Body, rec.CreatedAt))
	}

	sort.SliceStable(memos, func(i, j int) bool {
		if memos[i].CreatedAt().Equal(memos[j].CreatedAt()) {
			return memos[i].ID() < memos[j].ID()
		}
		return memos[i].CreatedAt().Before(memos[j].CreatedAt())
	})
	return memos, nil
}

// Delete removes one memo from its item's hash.
func (r *Repo) Delete(ctx context.Context, source item.Source, itemID, memoID string) error {
	key := r.key(source, itemID)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("hgetall %s: %w", key, err)
	}
	if _, ok := fields[memoID]; !ok {
		return domain.ErrMemoNotFound
	}
	if err := r.store.HDel(ctx, key, memoID); err != nil {
		return fmt.Errorf("hdel %s: %w", key, err)
	}
	return nil
}

func (r *Repo) key(source item.Source, itemID string) string {
	return r.prefix + "memo:" + string(source) + ":" + itemID
}
