package feed

import (
	"context"
	"strings"
	"testing"

	"arcade_backend/internal/model"
	"arcade_backend/internal/repository/feed_repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	items []model.FeedItem
}

func (r *recorder) Publish(item model.FeedItem) {
	r.items = append(r.items, item)
}

func TestPostStoresAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := feed_repo.NewMemoryFeedRepository()
	pub := &recorder{}
	s := NewFeedService(repo, pub, "[Bot] ")

	item, err := s.Post(ctx, 3, "  Big win  ", "Hit three sevens", []string{"Reels", "reels", " ", "luck"})
	require.NoError(t, err)
	assert.Equal(t, "Big win", item.Title)
	assert.Equal(t, int64(3), item.AuthorID)
	assert.Equal(t, []string{"reels", "luck"}, item.Tags)
	assert.NotEmpty(t, item.ID)

	items, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	require.Len(t, pub.items, 1)
}

func TestPostValidation(t *testing.T) {
	s := NewFeedService(feed_repo.NewMemoryFeedRepository(), nil, "[Bot] ")
	ctx := context.Background()

	cases := []struct{ title, content string }{
		{"", "body"},
		{"title", ""},
		{strings.Repeat("t", maxTitleRunes+1), "body"},
		{"title", strings.Repeat("c", maxContentRunes+1)},
		{"[Bot] fake news", "body"},
	}
	for _, c := range cases {
		_, err := s.Post(ctx, 1, c.title, c.content, nil)
		assert.ErrorIs(t, err, model.ErrInvalidInput, c.title)
	}
}

func TestListLimitIsClamped(t *testing.T) {
	repo := feed_repo.NewMemoryFeedRepository()
	s := NewFeedService(repo, nil, "")
	ctx := context.Background()
	for i := 0; i < MaxListLimit+10; i++ {
		_, err := s.Post(ctx, 1, "t", "c", nil)
		require.NoError(t, err)
	}

	items, err := s.List(ctx, 10_000)
	require.NoError(t, err)
	assert.Len(t, items, MaxListLimit)

	items, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, DefaultListLimit)
}
