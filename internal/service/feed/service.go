package feed

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/service"
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxTitleRunes   = 120
	maxContentRunes = 4000
	maxTags         = 5

	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Publisher рассылка новой записи подписчикам
type Publisher interface {
	Publish(item model.FeedItem)
}

type serv struct {
	repo repository.FeedRepository
	pub  Publisher
	// botPrefix префикс заголовков бота. Пользователям он запрещён, иначе собьётся кулдаун бота
	botPrefix string
}

func NewFeedService(repo repository.FeedRepository, pub Publisher, botPrefix string) service.FeedService {
	return &serv{repo: repo, pub: pub, botPrefix: botPrefix}
}

// List последние записи. limit 0 - значение по умолчанию
func (s *serv) List(ctx context.Context, limit uint64) ([]model.FeedItem, error) {
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *serv) Post(ctx context.Context, userID int64, title, content string, tags []string) (*model.FeedItem, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || utf8.RuneCountInString(title) > maxTitleRunes {
		return nil, errors.Wrapf(model.ErrInvalidInput, "title must be 1..%d characters", maxTitleRunes)
	}
	if content == "" || utf8.RuneCountInString(content) > maxContentRunes {
		return nil, errors.Wrapf(model.ErrInvalidInput, "content must be 1..%d characters", maxContentRunes)
	}
	if s.botPrefix != "" && strings.HasPrefix(title, strings.TrimSpace(s.botPrefix)) {
		return nil, errors.Wrap(model.ErrInvalidInput, "title prefix is reserved")
	}

	item := &model.FeedItem{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		AuthorID:  userID,
		Tags:      cleanTags(tags),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	if s.pub != nil {
		s.pub.Publish(*item)
	}
	return item, nil
}

// cleanTags нижний регистр, без пустых и повторов, не больше maxTags
func cleanTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
		if len(res) == maxTags {
			break
		}
	}
	return res
}
