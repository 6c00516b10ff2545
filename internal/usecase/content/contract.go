package content

import (
	"context"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

// Repository defines the storage contract for one content collection.
type Repository interface {
	Put(ctx context.Context, it item.Item) (bool, error)
	Get(ctx context.Context, id string) (item.Item, error)
	Delete(ctx context.Context, id string) error
	FetchAll(ctx context.Context) ([]item.Item, error)
}

// StatsRecorder tracks item view counters.
type StatsRecorder interface {
	Increment(ctx context.Context, source item.Source, id string) error
	Views(ctx context.Context, source item.Source, id string) (int64, error)
}
