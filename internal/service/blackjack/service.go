package blackjack

import (
	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"context"
	"sync"
)

const (
	// Колода на одну раздачу
	decksPerHand = 6
	// Мест за столом до очистки сыгранных
	defaultSeatLimit = 10000
)

type serv struct {
	ledger  repository.LedgerRepository
	history repository.HistoryRepository
	newShoe func() *cards.Shoe

	mtx   sync.Mutex
	seats map[int64]*seat

	// seatLimit порог размера seats, после которого места со сыгранными руками освобождаются
	seatLimit int
}

// seat место пользователя за столом. Держит последнюю руку, в том числе сыгранную
type seat struct {
	mtx  sync.Mutex
	hand *hand

	// gone место убрано из seats, держатель ссылки должен взять новое
	gone bool
}

type hand struct {
	id      string
	phase   model.BlackjackPhase
	shoe    *cards.Shoe
	player  cards.Hand
	dealer  cards.Hand
	draws   cards.Hand
	stake   int64
	doubled bool
	outcome model.BlackjackOutcome
	payout  int64
	balance int64
}

func NewBlackjackService(
	ledger repository.LedgerRepository,
	history repository.HistoryRepository,
	src rng.Source,
) service.BlackjackService {
	return &serv{
		ledger:    ledger,
		history:   history,
		newShoe:   func() *cards.Shoe { return cards.NewShoe(src, decksPerHand) },
		seats:     make(map[int64]*seat),
		seatLimit: defaultSeatLimit,
	}
}

// lockSeat место пользователя под захваченным st.mtx. Разблокирует вызывающий
func (s *serv) lockSeat(userID int64) *seat {
	for {
		st := s.seat(userID)
		st.mtx.Lock()
		if !st.gone {
			return st
		}
		// Место освободили, пока ждали блокировку
		st.mtx.Unlock()
	}
}

func (s *serv) seat(userID int64) *seat {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	st, ok := s.seats[userID]
	if !ok {
		if len(s.seats) >= s.seatLimit {
			s.sweepLocked()
		}
		st = &seat{}
		s.seats[userID] = st
	}
	return st
}

// sweepLocked убирает места без открытой руки. Занятые сейчас места пропускаются.
// Вызывается под s.mtx
func (s *serv) sweepLocked() {
	for userID, st := range s.seats {
		if !st.mtx.TryLock() {
			continue
		}
		if st.hand == nil || st.hand.phase == model.BlackjackSettled {
			st.gone = true
			delete(s.seats, userID)
		}
		st.mtx.Unlock()
	}
}

func (s *serv) History(ctx context.Context, userID int64) ([]model.RoundRecord, error) {
	return s.history.List(ctx, model.GameBlackjack, userID)
}

// State открытая или последняя сыгранная рука
func (s *serv) State(_ context.Context, userID int64) (*model.BlackjackHand, error) {
	st := s.lockSeat(userID)
	defer st.mtx.Unlock()

	if st.hand == nil {
		return nil, model.ErrNotFound
	}
	return st.hand.view(), nil
}

// view снимок для клиента. Пока ходит игрок, закрытая карта дилера не отдаётся
func (h *hand) view() *model.BlackjackHand {
	res := &model.BlackjackHand{
		RoundID:     h.id,
		Phase:       h.phase,
		Player:      append(cards.Hand(nil), h.player...),
		Stake:       h.stake,
		Doubled:     h.doubled,
		Outcome:     h.outcome,
		Payout:      h.payout,
		Balance:     h.balance,
		DealerDraws: append(cards.Hand(nil), h.draws...),
	}
	res.PlayerTotal, _ = cards.BlackjackTotal(h.player)

	dealer := h.dealer
	if h.phase == model.BlackjackPlayerTurn && len(dealer) > 0 {
		dealer = dealer[:1]
	}
	res.Dealer = append(cards.Hand(nil), dealer...)
	res.DealerTotal, _ = cards.BlackjackTotal(dealer)
	return res
}
