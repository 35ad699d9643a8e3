package blackjack

import (
	"context"
	"testing"

	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository/history_repo"
	"arcade_backend/internal/repository/ledger_repo"
	"arcade_backend/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r cards.Rank) cards.Card { return cards.Card{Rank: r, Suit: cards.Clubs} }

func handOf(ranks ...cards.Rank) cards.Hand {
	res := make(cards.Hand, len(ranks))
	for i, r := range ranks {
		res[i] = c(r)
	}
	return res
}

// newTable сервис с колодой в заданном порядке: игрок, дилер, игрок, дилер, затем добор
func newTable(t *testing.T, balance int64, ranks ...cards.Rank) (*serv, *ledger_repo.MemoryLedger) {
	t.Helper()
	ledger := ledger_repo.NewMemoryLedger()
	ledger.SetBalance(1, balance)
	s := NewBlackjackService(ledger, history_repo.NewMemoryHistoryRepository(0), rng.New(1)).(*serv)
	s.newShoe = func() *cards.Shoe { return cards.NewStackedShoe(handOf(ranks...)...) }
	return s, ledger
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		player  cards.Hand
		dealer  cards.Hand
		outcome model.BlackjackOutcome
		payout  int64
	}{
		{"natural pays three to two", handOf(cards.Ace, cards.King), handOf(10, 9), model.OutcomeNatural, 250},
		{"both natural push", handOf(cards.Ace, cards.King), handOf(cards.Ace, cards.Queen), model.OutcomePush, 100},
		{"dealer natural", handOf(10, 9), handOf(cards.Ace, cards.Jack), model.OutcomeDealerNatural, 0},
		{"bust loses even if dealer busts", handOf(10, 9, 5), handOf(10, 6, 8), model.OutcomeBust, 0},
		{"charlie beats dealer twenty", handOf(2, 3, 2, 4, 5), handOf(10, 10), model.OutcomeCharlie, 400},
		{"dealer bust", handOf(10, 8), handOf(10, 6, 9), model.OutcomeDealerBust, 200},
		{"win", handOf(10, 9), handOf(10, 8), model.OutcomeWin, 200},
		{"push", handOf(10, 8), handOf(9, 9), model.OutcomePush, 100},
		{"lose", handOf(10, 7), handOf(10, 8), model.OutcomeLose, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, payout := Settle(tt.player, tt.dealer, 100)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.payout, payout)
		})
	}
}

func TestNaturalPayoutFloorsOddStake(t *testing.T) {
	_, payout := Settle(handOf(cards.Ace, cards.King), handOf(10, 9), 5)
	assert.Equal(t, int64(12), payout) // 5 + floor(7.5)
}

func TestDealerPlayStopsAtSeventeen(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		shoe := cards.NewShoe(rng.New(seed), 1)
		start := cards.Hand{shoe.Draw(), shoe.Draw()}
		final, draws := DealerPlay(shoe, start)

		require.Equal(t, len(start)+len(draws), len(final))
		total, _ := cards.BlackjackTotal(final)
		assert.GreaterOrEqual(t, total, 17)
		if len(draws) > 0 {
			before, _ := cards.BlackjackTotal(final[:len(final)-1])
			assert.Less(t, before, 17, "dealer drew at %d", before)
		}
	}
}

func TestDealerStandsOnSoftSeventeen(t *testing.T) {
	final, draws := DealerPlay(cards.NewStackedShoe(), handOf(cards.Ace, 6))
	assert.Empty(t, draws)
	assert.Len(t, final, 2)
}

func TestDealDebitsAndHidesHoleCard(t *testing.T) {
	s, ledger := newTable(t, 1000, 10, 9, 6, 7)
	ctx := context.Background()

	res, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackPlayerTurn, res.Phase)
	assert.Equal(t, int64(900), res.Balance)
	assert.Len(t, res.Player, 2)
	assert.Len(t, res.Dealer, 1)
	assert.Equal(t, 9, res.DealerTotal)

	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, int64(900), balance)
}

func TestDealRejectsWhileHandOpen(t *testing.T) {
	s, ledger := newTable(t, 1000, 10, 9, 6, 7)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	_, err = s.Deal(ctx, 1, 100)
	assert.ErrorIs(t, err, model.ErrInvalidRoundState)

	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, int64(900), balance)
}

func TestDealOverBalanceChangesNothing(t *testing.T) {
	s, ledger := newTable(t, 50, 10, 9, 6, 7)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)

	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, int64(50), balance)
	_, err = s.State(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNaturalSettlesOnDeal(t *testing.T) {
	s, _ := newTable(t, 1000, cards.Ace, 10, cards.King, 7)

	res, err := s.Deal(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackSettled, res.Phase)
	assert.Equal(t, model.OutcomeNatural, res.Outcome)
	assert.Equal(t, int64(1150), res.Balance)
	assert.Len(t, res.Dealer, 2)
}

func TestHitBustEndsHandWithoutDealer(t *testing.T) {
	s, _ := newTable(t, 1000, 10, 10, 6, 6, cards.King)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	res, err := s.Hit(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeBust, res.Outcome)
	assert.Equal(t, model.BlackjackSettled, res.Phase)
	assert.Empty(t, res.DealerDraws)
	assert.Equal(t, int64(900), res.Balance)

	_, err = s.Hit(ctx, 1)
	assert.ErrorIs(t, err, model.ErrInvalidRoundState)
}

func TestFiveCardCharlie(t *testing.T) {
	s, _ := newTable(t, 1000, 2, 10, 2, 10, 3, 2, 4)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		res, err := s.Hit(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, model.BlackjackPlayerTurn, res.Phase)
	}
	res, err := s.Hit(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeCharlie, res.Outcome)
	assert.Equal(t, int64(400), res.Payout)
	assert.Equal(t, int64(1300), res.Balance)
}

func TestStandDealerDrawsInOrder(t *testing.T) {
	// Игрок 10+8, дилер 10+4 добирает 2 и 3 -> 19
	s, _ := newTable(t, 1000, 10, 10, 8, 4, 2, 3)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	res, err := s.Stand(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, handOf(2, 3), res.DealerDraws)
	assert.Equal(t, 19, res.DealerTotal)
	assert.Equal(t, model.OutcomeLose, res.Outcome)
	assert.Equal(t, int64(900), res.Balance)

	history, err := s.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(100), history[0].Stake)
}

func TestDoubleDrawsOneCardAndDoublesStake(t *testing.T) {
	// Игрок 5+6 удваивает, получает 10 -> 21. Дилер 10+7 стоит
	s, ledger := newTable(t, 1000, 5, 10, 6, 7, 10)
	ctx := context.Background()

	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	res, err := s.Double(ctx, 1)
	require.NoError(t, err)

	assert.True(t, res.Doubled)
	assert.Equal(t, int64(200), res.Stake)
	assert.Len(t, res.Player, 3)
	assert.Equal(t, model.OutcomeWin, res.Outcome)
	assert.Equal(t, int64(400), res.Payout)

	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, int64(1200), balance)
}

func TestDoubleRequiresTwoCardsAndBalance(t *testing.T) {
	ctx := context.Background()

	s, _ := newTable(t, 1000, 2, 10, 3, 8, 4)
	_, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	_, err = s.Hit(ctx, 1)
	require.NoError(t, err)
	_, err = s.Double(ctx, 1)
	assert.ErrorIs(t, err, model.ErrInvalidRoundState)

	poor, ledger := newTable(t, 150, 5, 10, 6, 7, 10)
	_, err = poor.Deal(ctx, 1, 100)
	require.NoError(t, err)
	_, err = poor.Double(ctx, 1)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)

	state, err := poor.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackPlayerTurn, state.Phase)
	assert.Equal(t, int64(100), state.Stake)
	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, int64(50), balance)
}

func TestSettledSeatsAreReleased(t *testing.T) {
	ctx := context.Background()
	s, ledger := newTable(t, 1000, cards.Ace, 10, cards.King, 7)
	ledger.SetBalance(2, 1000)
	ledger.SetBalance(3, 1000)
	s.seatLimit = 2

	// Натуральный блэкджек закрывает руку сразу
	res, err := s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	require.Equal(t, model.BlackjackSettled, res.Phase)

	s.newShoe = func() *cards.Shoe { return cards.NewStackedShoe(handOf(10, 9, 8, 7, 10)...) }
	res, err = s.Deal(ctx, 2, 100)
	require.NoError(t, err)
	require.Equal(t, model.BlackjackPlayerTurn, res.Phase)

	// Третье место сверх лимита: сыгранное место первого освобождается, открытая рука второго остаётся
	_, err = s.Deal(ctx, 3, 100)
	require.NoError(t, err)
	assert.Len(t, s.seats, 2)
	assert.NotContains(t, s.seats, int64(1))
	assert.Contains(t, s.seats, int64(2))

	_, err = s.State(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	res, err = s.Stand(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackSettled, res.Phase)
	assert.Equal(t, int64(1100), res.Balance)

	// После очистки пользователь играет снова
	s.newShoe = func() *cards.Shoe { return cards.NewStackedShoe(handOf(cards.Ace, 10, cards.King, 7)...) }
	res, err = s.Deal(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1300), res.Balance)
}
