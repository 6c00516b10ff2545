package chi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eunyuson/graceroom/internal/domain/guestbook"
	"github.com/eunyuson/graceroom/internal/domain/hymn"
	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/memo"
	contentuc "github.com/eunyuson/graceroom/internal/usecase/content"
	guestbookuc "github.com/eunyuson/graceroom/internal/usecase/guestbook"
	healthuc "github.com/eunyuson/graceroom/internal/usecase/health"
	hymnuc "github.com/eunyuson/graceroom/internal/usecase/hymn"
	memouc "github.com/eunyuson/graceroom/internal/usecase/memo"
	relateduc "github.com/eunyuson/graceroom/internal/usecase/related"
)

// mockEntryRepo backs both the content repository and the related snapshotter.
type mockEntryRepo struct {
	putFn      func(ctx context.Context, it item.Item) (bool, error)
	getFn      func(ctx context.Context, id string) (item.Item, error)
	deleteFn   func(ctx context.Context, id string) error
	fetchAllFn func(ctx context.Context) ([]item.Item, error)
}

func (m *mockEntryRepo) Put(ctx context.Context, it item.Item) (bool, error) {
	if m.putFn != nil {
		return m.putFn(ctx, it)
	}
	return true, nil
}

func (m *mockEntryRepo) Get(ctx context.Context, id string) (item.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return item.Item{}, nil
}

func (m *mockEntryRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockEntryRepo) FetchAll(ctx context.Context) ([]item.Item, error) {
	if m.fetchAllFn != nil {
		return m.fetchAllFn(ctx)
	}
	return nil, nil
}

type mockStats struct {
	incrementFn func(ctx context.Context, source item.Source, id string) error
	viewsFn     func(ctx context.Context, source item.Source, id string) (int64, error)
}

func (m *mockStats) Increment(ctx context.Context, source item.Source, id string) error {
	if m.incrementFn != nil {
		return m.incrementFn(ctx, source, id)
	}
	return nil
}

func (m *mockStats) Views(ctx context.Context, source item.Source, id string) (int64, error) {
	if m.viewsFn != nil {
		return m.viewsFn(ctx, source, id)
	}
	return 0, nil
}

type mockGuestbookRepo struct {
	putFn    func(ctx context.Context, e guestbook.Entry) error
	listFn   func(ctx context.Context) ([]guestbook.Entry, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockGuestbookRepo) Put(ctx context.Context, e guestbook.Entry) error {
	if m.putFn != nil {
		return m.putFn(ctx, e)
	}
	return nil
}

func (m *mockGuestbookRepo) List(ctx context.Context) ([]guestbook.Entry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockGuestbookRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMemoRepo struct {
	putFn    func(ctx context.Context, m memo.Memo) error
	listFn   func(ctx context.Context, source item.Source, itemID string) ([]memo.Memo, error)
	deleteFn func(ctx context.Context, source item.Source, itemID, memoID string) error
}

func (m *mockMemoRepo) Put(ctx context.Context, mm memo.Memo) error {
	if m.putFn != nil {
		return m.putFn(ctx, mm)
	}
	return nil
}

func (m *mockMemoRepo) List(ctx context.Context, source item.Source, itemID string) ([]memo.Memo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, source, itemID)
	}
	return nil, nil
}

func (m *mockMemoRepo) Delete(ctx context.Context, source item.Source, itemID, memoID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, source, itemID, memoID)
	}
	return nil
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// testDeps holds the mocks behind a test server, one entry repo per source.
type testDeps struct {
	repos     map[item.Source]*mockEntryRepo
	stats     *mockStats
	guestbook *mockGuestbookRepo
	memos     *mockMemoRepo
	pinger    *mockPinger
	hymns     []hymn.Hymn
}

func newTestDeps() *testDeps {
	repos := make(map[item.Source]*mockEntryRepo, len(item.Sources()))
	for _, src := range item.Sources() {
		repos[src] = &mockEntryRepo{}
	}
	return &testDeps{
		repos:     repos,
		stats:     &mockStats{},
		guestbook: &mockGuestbookRepo{},
		memos:     &mockMemoRepo{},
		pinger:    &mockPinger{},
	}
}

// newTestHandler wires real services over the mocks and returns the routed handler.
func newTestHandler(deps *testDeps) http.Handler {
	contentRepos := make(map[item.Source]contentuc.Repository, len(deps.repos))
	snapshotters := make(map[item.Source]relateduc.Snapshotter, len(deps.repos))
	for src, repo := range deps.repos {
		contentRepos[src] = repo
		snapshotters[src] = repo
	}

	srv := NewServer(
		contentuc.New(contentRepos, deps.stats),
		relateduc.New(snapshotters),
		guestbookuc.New(deps.guestbook),
		memouc.New(deps.memos),
		hymnuc.New(deps.hymns),
		healthuc.New(deps.pinger),
		0.2,
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}
