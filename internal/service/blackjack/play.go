package blackjack

import (
	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/logger"
	"arcade_backend/internal/metrics"
	"arcade_backend/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	dealerStandsOn = 17
	charlieCards   = 5
)

// Deal списывает ставку и раздаёт по две карты. Натуральный блэкджек у любой стороны закрывает руку сразу
func (s *serv) Deal(ctx context.Context, userID int64, bet int64) (*model.BlackjackHand, error) {
	if bet <= 0 {
		return nil, errors.Wrap(model.ErrInvalidBet, "bet must be positive")
	}

	st := s.lockSeat(userID)
	defer st.mtx.Unlock()

	if st.hand != nil && st.hand.phase != model.BlackjackSettled {
		return nil, model.ErrInvalidRoundState
	}

	id := uuid.NewString()
	balance, err := s.ledger.Debit(ctx, userID, bet, model.GameBlackjack+":bet:"+id)
	if err != nil {
		return nil, err
	}

	h := &hand{
		id:      id,
		phase:   model.BlackjackBetting,
		shoe:    s.newShoe(),
		stake:   bet,
		balance: balance,
	}
	h.player = append(h.player, h.shoe.Draw())
	h.dealer = append(h.dealer, h.shoe.Draw())
	h.player = append(h.player, h.shoe.Draw())
	h.dealer = append(h.dealer, h.shoe.Draw())
	st.hand = h

	if cards.IsNatural(h.player) || cards.IsNatural(h.dealer) {
		return s.finish(ctx, userID, h)
	}
	h.phase = model.BlackjackPlayerTurn
	return h.view(), nil
}

// Hit одна карта игроку. Перебор и пятикарточный чарли закрывают руку без хода дилера
func (s *serv) Hit(ctx context.Context, userID int64) (*model.BlackjackHand, error) {
	st := s.lockSeat(userID)
	defer st.mtx.Unlock()

	h, err := playerTurn(st)
	if err != nil {
		return nil, err
	}

	h.player = append(h.player, h.shoe.Draw())
	if cards.IsBust(h.player) || len(h.player) >= charlieCards {
		return s.finish(ctx, userID, h)
	}
	return h.view(), nil
}

func (s *serv) Stand(ctx context.Context, userID int64) (*model.BlackjackHand, error) {
	st := s.lockSeat(userID)
	defer st.mtx.Unlock()

	h, err := playerTurn(st)
	if err != nil {
		return nil, err
	}

	h.phase = model.BlackjackDealerTurn
	h.dealer, h.draws = DealerPlay(h.shoe, h.dealer)
	return s.finish(ctx, userID, h)
}

// Double удваивает ставку на двух картах и добирает ровно одну
func (s *serv) Double(ctx context.Context, userID int64) (*model.BlackjackHand, error) {
	st := s.lockSeat(userID)
	defer st.mtx.Unlock()

	h, err := playerTurn(st)
	if err != nil {
		return nil, err
	}
	if len(h.player) != 2 {
		return nil, errors.Wrap(model.ErrInvalidRoundState, "double is allowed on two cards only")
	}

	balance, err := s.ledger.Debit(ctx, userID, h.stake, model.GameBlackjack+":double:"+h.id)
	if err != nil {
		return nil, err
	}
	h.balance = balance
	h.stake *= 2
	h.doubled = true

	h.player = append(h.player, h.shoe.Draw())
	if !cards.IsBust(h.player) {
		h.phase = model.BlackjackDealerTurn
		h.dealer, h.draws = DealerPlay(h.shoe, h.dealer)
	}
	return s.finish(ctx, userID, h)
}

func playerTurn(st *seat) (*hand, error) {
	if st.hand == nil || st.hand.phase != model.BlackjackPlayerTurn {
		return nil, model.ErrInvalidRoundState
	}
	return st.hand, nil
}

// DealerPlay дилер добирает, пока лучшая сумма меньше 17. Возвращает итоговую руку и карты добора по порядку
func DealerPlay(shoe *cards.Shoe, dealer cards.Hand) (cards.Hand, cards.Hand) {
	res := append(cards.Hand(nil), dealer...)
	var draws cards.Hand
	for {
		total, _ := cards.BlackjackTotal(res)
		if total >= dealerStandsOn {
			return res, draws
		}
		c := shoe.Draw()
		res = append(res, c)
		draws = append(draws, c)
	}
}

// finish расчёт и закрытие руки. Рука закрывается и при ошибке леджера
func (s *serv) finish(ctx context.Context, userID int64, h *hand) (*model.BlackjackHand, error) {
	h.outcome, h.payout = Settle(h.player, h.dealer, h.stake)
	h.phase = model.BlackjackSettled

	var (
		balance int64
		err     error
	)
	if h.payout > 0 {
		balance, err = s.ledger.Credit(ctx, userID, h.payout, model.GameBlackjack+":payout:"+h.id)
	} else {
		balance, err = s.ledger.Balance(ctx, userID)
	}
	if err != nil {
		logger.Error("blackjack: ledger failed after settle",
			zap.String("round_id", h.id),
			zap.Int64("user_id", userID),
			zap.Int64("payout", h.payout),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "settle hand")
	}
	h.balance = balance

	metrics.RecordRound(model.GameBlackjack, h.stake, h.payout)
	if s.history != nil {
		pt, _ := cards.BlackjackTotal(h.player)
		dt, _ := cards.BlackjackTotal(h.dealer)
		rec := model.RoundRecord{
			RoundID: h.id,
			Game:    model.GameBlackjack,
			UserID:  userID,
			Outcome: fmt.Sprintf("%s %d:%d", h.outcome, pt, dt),
			Stake:   h.stake,
			Payout:  h.payout,
			At:      time.Now(),
		}
		if err := s.history.Push(ctx, rec); err != nil {
			logger.Warn("blackjack: history push failed", zap.Error(err))
		}
	}
	return h.view(), nil
}
