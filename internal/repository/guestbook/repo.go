// Package guestbook persists guestbook entries as JSON documents.
package guestbook

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/guestbook"
)

// store is the consumer interface for guestbook entries (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements persistence for the guestbook.
type Repo struct {
	store  store
	prefix string
}

// New creates a guestbook repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// record is the stored JSON shape of an entry. The ID lives in the key.
type record struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Put stores an entry.
func (r *Repo) Put(ctx context.Context, e guestbook.Entry) error {
	key := r.key(e.ID())
	data, err := json.Marshal(record{
		Author:    e.Author(),
		Message:   e.Message(),
		CreatedAt: e.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// List returns all entries, newest first.
func (r *Repo) List(ctx context.Context) ([]guestbook.Entry, error) {
	pattern := r.prefix + "guestbook:*"
	keys, err := r.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	raws, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("json.get multi: %w", err)
	}

	entries := make([]guestbook.Entry, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		id := keys[i][len(r.prefix)+len("guestbook:"):]
		entries = append(entries, guestbook.Reconstruct(id, rec.Author, rec.Message, rec.CreatedAt))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt().After(entries[j].CreatedAt())
	})
	return entries, nil
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrEntryNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func (r *Repo) key(id string) string {
	return r.prefix + "guestbook:" + id
}
