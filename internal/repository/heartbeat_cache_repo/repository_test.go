package heartbeat_cache_repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"arcade_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, repo repository.HeartbeatCacheRepository) {
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "claim")
	require.NoError(t, err)
	assert.False(t, found)

	first := time.UnixMilli(1_700_000_000_000)
	require.NoError(t, repo.Set(ctx, "claim", first))
	at, found, err := repo.Get(ctx, "claim")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, first.Equal(at))

	second := first.Add(time.Minute)
	require.NoError(t, repo.Set(ctx, "claim", second))
	at, _, err = repo.Get(ctx, "claim")
	require.NoError(t, err)
	assert.True(t, second.Equal(at))
}

func TestMemoryRepository(t *testing.T) {
	exercise(t, NewMemoryRepository())
}

func TestSQLiteRepositorySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat.db")

	repo, db, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	exercise(t, repo)
	require.NoError(t, db.Close())

	reopened, db, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer db.Close()

	_, found, err := reopened.Get(context.Background(), "claim")
	require.NoError(t, err)
	assert.True(t, found)
}
