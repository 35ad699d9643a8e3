package history_repo

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"context"
	"sync"
)

// DefaultWindowSize сколько последних раундов храним на пользователя и игру
const DefaultWindowSize = 20

type windowKey struct {
	game   string
	userID int64
}

// window окно последних раундов и RTP по окну
type window struct {
	rounds      []model.RoundRecord
	totalStake  int64
	totalPayout int64
}

// MemoryRepo хранение истории в памяти процесса
type MemoryRepo struct {
	mtx        sync.RWMutex
	windowSize int
	windows    map[windowKey]*window
}

// NewMemoryHistoryRepository конструктор. windowSize <= 0 - размер по умолчанию
func NewMemoryHistoryRepository(windowSize int) *MemoryRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &MemoryRepo{
		windowSize: windowSize,
		windows:    make(map[windowKey]*window),
	}
}

var _ repository.HistoryRepository = (*MemoryRepo)(nil)

// Push добавляет раунд в окно, самый старый вытесняется
func (r *MemoryRepo) Push(_ context.Context, rec model.RoundRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := windowKey{game: rec.Game, userID: rec.UserID}
	w, ok := r.windows[key]
	if !ok {
		w = &window{}
		r.windows[key] = w
	}

	w.rounds = append(w.rounds, rec)
	w.totalStake += rec.Stake
	w.totalPayout += rec.Payout

	// Поддерживаем размер окна
	if len(w.rounds) > r.windowSize {
		evicted := w.rounds[0]
		w.rounds = w.rounds[1:]
		w.totalStake -= evicted.Stake
		w.totalPayout -= evicted.Payout
	}
	return nil
}

// List последние раунды, новые первыми
func (r *MemoryRepo) List(_ context.Context, game string, userID int64) ([]model.RoundRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	w, ok := r.windows[windowKey{game: game, userID: userID}]
	if !ok {
		return []model.RoundRecord{}, nil
	}

	res := make([]model.RoundRecord, 0, len(w.rounds))
	for i := len(w.rounds) - 1; i >= 0; i-- {
		res = append(res, w.rounds[i])
	}
	return res, nil
}

// WindowRTP RTP в процентах по окну пользователя. 0, если ставок не было
func (r *MemoryRepo) WindowRTP(game string, userID int64) float64 {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	w, ok := r.windows[windowKey{game: game, userID: userID}]
	if !ok || w.totalStake == 0 {
		return 0
	}
	return float64(w.totalPayout) / float64(w.totalStake) * 100
}
