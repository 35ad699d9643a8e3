package feed_repo

import (
	"arcade_backend/internal/model"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo лента в памяти для тестов и локального запуска
type MemoryRepo struct {
	mtx   sync.RWMutex
	items []model.FeedItem
}

func NewMemoryFeedRepository() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(_ context.Context, item *model.FeedItem) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.items = append(r.items, *item)
	return nil
}

func (r *MemoryRepo) LatestByTitlePrefix(_ context.Context, prefix string) (time.Time, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var (
		latest time.Time
		found  bool
	)
	for _, item := range r.items {
		if strings.HasPrefix(item.Title, prefix) && (!found || item.CreatedAt.After(latest)) {
			latest, found = item.CreatedAt, true
		}
	}
	return latest, found, nil
}

func (r *MemoryRepo) List(_ context.Context, limit uint64) ([]model.FeedItem, error) {
	r.mtx.RLock()
	items := make([]model.FeedItem, len(r.items))
	copy(items, r.items)
	r.mtx.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if uint64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}
