package heartbeat_cache_repo

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo кэш в памяти процесса, пропадает при перезапуске
type MemoryRepo struct {
	mtx    sync.RWMutex
	values map[string]time.Time
}

func NewMemoryRepository() *MemoryRepo {
	return &MemoryRepo{values: make(map[string]time.Time)}
}

func (r *MemoryRepo) Get(_ context.Context, key string) (time.Time, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	at, ok := r.values[key]
	return at, ok, nil
}

func (r *MemoryRepo) Set(_ context.Context, key string, at time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.values[key] = at
	return nil
}
