package related

import (
	"context"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

// Snapshotter delivers a point-in-time snapshot of one source collection.
// Snapshots need not reflect the latest remote state; collections update
// independently and staleness is accepted.
type Snapshotter interface {
	FetchAll(ctx context.Context) ([]item.Item, error)
}
