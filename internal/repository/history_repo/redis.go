package history_repo

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "arcade:history:"
	// История только для показа, держим неделю без активности
	keyTTL = 7 * 24 * time.Hour
)

type redisRecord struct {
	RoundID string `json:"round_id"`
	Game    string `json:"game"`
	UserID  int64  `json:"user_id"`
	Outcome string `json:"outcome"`
	Stake   int64  `json:"stake"`
	Payout  int64  `json:"payout"`
	At      int64  `json:"at"`
}

type redisRepo struct {
	rdb        *goredis.Client
	windowSize int64
}

// NewRedisHistoryRepository история в списках Redis: LPUSH + LTRIM на каждый раунд
func NewRedisHistoryRepository(rdb *goredis.Client, windowSize int) repository.HistoryRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &redisRepo{
		rdb:        rdb,
		windowSize: int64(windowSize),
	}
}

func historyKey(game string, userID int64) string {
	return keyPrefix + game + ":" + strconv.FormatInt(userID, 10)
}

func (r *redisRepo) Push(ctx context.Context, rec model.RoundRecord) error {
	payload, err := json.Marshal(redisRecord{
		RoundID: rec.RoundID,
		Game:    rec.Game,
		UserID:  rec.UserID,
		Outcome: rec.Outcome,
		Stake:   rec.Stake,
		Payout:  rec.Payout,
		At:      rec.At.UnixMilli(),
	})
	if err != nil {
		return err
	}

	key := historyKey(rec.Game, rec.UserID)
	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, r.windowSize-1)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(model.ErrRemoteUnavailable, "push history: %v", err)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context, game string, userID int64) ([]model.RoundRecord, error) {
	raw, err := r.rdb.LRange(ctx, historyKey(game, userID), 0, r.windowSize-1).Result()
	if err != nil {
		return nil, errors.Wrapf(model.ErrRemoteUnavailable, "list history: %v", err)
	}

	res := make([]model.RoundRecord, 0, len(raw))
	for _, item := range raw {
		var rec redisRecord
		// Битые записи пропускаем: это только лента для показа
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		res = append(res, model.RoundRecord{
			RoundID: rec.RoundID,
			Game:    rec.Game,
			UserID:  rec.UserID,
			Outcome: rec.Outcome,
			Stake:   rec.Stake,
			Payout:  rec.Payout,
			At:      time.UnixMilli(rec.At),
		})
	}
	return res, nil
}
