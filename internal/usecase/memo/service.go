// Package memo manages per-item memo comments.
package memo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eunyuson/graceroom/internal/domain"
	"github.com/eunyuson/graceroom/internal/domain/item"
	dommemo "github.com/eunyuson/graceroom/internal/domain/memo"
)

// Repository defines the storage contract for memos.
type Repository interface {
	Put(ctx context.Context, m dommemo.Memo) error
	List(ctx context.Context, source item.Source, itemID string) ([]dommemo.Memo, error)
	Delete(ctx context.Context, source item.Source, itemID, memoID string) error
}

// Service handles memo operations.
type Service struct {
	repo Repository
}

// New creates a memo service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Write validates and stores a memo with a server-generated ID.
func (s *Service) Write(
	ctx context.Context, source item.Source, itemID, author, body string,
) (dommemo.Memo, error) {
	m, err := dommemo.New(source, itemID, uuid.NewString(), author, body, time.Now().UTC())
	if err != nil {
		return dommemo.Memo{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Put(ctx, m); err != nil {
		return dommemo.Memo{}, fmt.Errorf("put memo: %w", err)
	}
	return m, nil
}

// List returns the memos of one content item, oldest first.
func (s *Service) List(ctx context.Context, source item.Source, itemID string) ([]dommemo.Memo, error) {
	memos, err := s.repo.List(ctx, source, itemID)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	return memos, nil
}

// Remove deletes one memo.
func (s *Service) Remove(ctx context.Context, source item.Source, itemID, memoID string) error {
	return s.repo.Delete(ctx, source, itemID, memoID)
}
