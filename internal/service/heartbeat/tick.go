package heartbeat

import (
	"arcade_backend/internal/logger"
	"arcade_backend/internal/metrics"
	"arcade_backend/internal/model"
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tick одна проверка: idle -> checking -> skip | emitting -> idle
func (s *serv) Tick(ctx context.Context, session model.BotSession) model.HeartbeatDecision {
	decision := s.tick(ctx, session)
	metrics.RecordHeartbeat(string(decision))
	return decision
}

func (s *serv) tick(ctx context.Context, session model.BotSession) model.HeartbeatDecision {
	if session.UserID == 0 {
		return model.HeartbeatNoSession
	}
	if !s.inFlight.TryLock() {
		return model.HeartbeatBusy
	}
	defer s.inFlight.Unlock()

	now := s.now()

	// Свежая заявка этого экземпляра: пост уже в работе или только что сделан
	if claim, ok := s.cached(ctx, keyClaim); ok && now.Sub(claim) < s.opts.Cooldown {
		return model.HeartbeatClaimed
	}

	last := s.lastEmission(ctx)
	if !Eligible(now, last, s.opts.Cooldown) {
		return model.HeartbeatCooldown
	}

	// Заявка пишется до медленных вызовов
	if err := s.cache.Set(ctx, keyClaim, now); err != nil {
		logger.Warn("heartbeat: claim write failed", zap.Error(err))
	}

	topic := s.opts.Topics[s.rng.Intn(len(s.opts.Topics))]
	report, err := s.scout.Scout(ctx, topic.Name, topic.Category)
	if err != nil || report == nil {
		logger.Info("heartbeat: scout returned nothing",
			zap.String("topic", topic.Name),
			zap.String("category", topic.Category),
			zap.Error(err),
		)
		return model.HeartbeatScoutEmpty
	}

	item := model.FeedItem{
		ID:         uuid.NewString(),
		Title:      feedTitle(s.opts.TitlePrefix, report.Title),
		Content:    report.Summary,
		AuthorID:   session.UserID,
		Tags:       []string{topic.Category},
		SourceName: report.SourceName,
		SourceURL:  report.SourceURL,
		CreatedAt:  now,
	}
	if err := s.feed.Insert(ctx, &item); err != nil {
		logger.Error("heartbeat: feed insert failed", zap.Error(err))
		return model.HeartbeatInsertFailed
	}

	if err := s.cache.Set(ctx, keyLastEmit, now); err != nil {
		logger.Warn("heartbeat: last emit write failed", zap.Error(err))
	}
	if s.pub != nil {
		s.pub.Publish(item)
	}

	logger.Info("heartbeat: emitted", zap.String("item_id", item.ID), zap.String("title", item.Title))
	return model.HeartbeatEmitted
}

// lastEmission время последнего поста из ленты, при недоступной ленте из локального кэша.
// Нулевое время - постов не было
func (s *serv) lastEmission(ctx context.Context) time.Time {
	at, found, err := s.feed.LatestByTitlePrefix(ctx, s.opts.TitlePrefix)
	if err == nil {
		if !found {
			return time.Time{}
		}
		if err := s.cache.Set(ctx, keyLastEmit, at); err != nil {
			logger.Warn("heartbeat: cache refresh failed", zap.Error(err))
		}
		return at
	}

	metrics.RecordHeartbeatDegraded()
	logger.Warn("heartbeat: remote read failed, using local cache", zap.Error(err))
	cached, _ := s.cached(ctx, keyLastEmit)
	return cached
}

func (s *serv) cached(ctx context.Context, key string) (time.Time, bool) {
	at, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("heartbeat: cache read failed", zap.String("key", key), zap.Error(err))
		return time.Time{}, false
	}
	return at, found
}

// Eligible строго больше кулдауна с последнего поста
func Eligible(now, last time.Time, cooldown time.Duration) bool {
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > cooldown
}

// feedTitle префикс бота плюс заголовок новости, обрезанный так, чтобы целиком уложиться в maxTitleRunes
func feedTitle(prefix, title string) string {
	room := maxTitleRunes - utf8.RuneCountInString(prefix)
	if r := []rune(title); len(r) > room {
		title = string(r[:room])
	}
	return prefix + title
}
