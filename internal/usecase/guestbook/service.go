// Package guestbook manages the community guestbook.
package guestbook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eunyuson/graceroom/internal/domain"
	domgb "github.com/eunyuson/graceroom/internal/domain/guestbook"
)

// Repository defines the storage contract for guestbook entries.
type Repository interface {
	Put(ctx context.Context, e domgb.Entry) error
	List(ctx context.Context) ([]domgb.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Service handles guestbook operations.
type Service struct {
	repo Repository
}

// New creates a guestbook service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Sign validates and stores a new entry with a server-generated ID.
func (s *Service) Sign(ctx context.Context, author, message string) (domgb.Entry, error) {
	e, err := domgb.New(uuid.NewString(), author, message, time.Now().UTC())
	if err != nil {
		return domgb.Entry{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return domgb.Entry{}, fmt.Errorf("put entry: %w", err)
	}
	return e, nil
}

// List returns all entries, newest first.
func (s *Service) List(ctx context.Context) ([]domgb.Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Remove deletes an entry.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
