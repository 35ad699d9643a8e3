package roulette

import (
	"context"
	"testing"

	"arcade_backend/internal/model"
	"arcade_backend/internal/repository/history_repo"
	"arcade_backend/internal/repository/ledger_repo"
	"arcade_backend/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = int64(1)

func newServ(seed uint64, balance int64) (*serv, *ledger_repo.MemoryLedger) {
	ledger := ledger_repo.NewMemoryLedger()
	ledger.SetBalance(userID, balance)
	s := NewRouletteService(ledger, history_repo.NewMemoryHistoryRepository(0), rng.New(seed))
	return s.(*serv), ledger
}

func TestSegmentColors(t *testing.T) {
	reds, blacks := 0, 0
	for n := 0; n < wheelSize; n++ {
		switch SegmentOf(n).Color {
		case model.ColorRed:
			reds++
		case model.ColorBlack:
			blacks++
		}
	}
	assert.Equal(t, 18, reds)
	assert.Equal(t, 18, blacks)
	assert.Equal(t, model.ColorGreen, SegmentOf(0).Color)
}

func TestZeroLosesEvenMoneyBets(t *testing.T) {
	pay := Payout(SegmentOf(0))
	for _, target := range []string{TargetRed, TargetBlack, TargetOdd, TargetEven, TargetLow, TargetHigh} {
		assert.Zero(t, pay(target, 100), target)
	}
	assert.Equal(t, int64(3600), pay("0", 100))
}

func TestPayoutMultipliers(t *testing.T) {
	seg := SegmentOf(7) // red, odd, low
	pay := Payout(seg)

	assert.Equal(t, int64(3600), pay("7", 100))
	assert.Zero(t, pay("8", 100))
	assert.Equal(t, int64(190), pay(TargetRed, 100))
	assert.Equal(t, int64(190), pay(TargetOdd, 100))
	assert.Equal(t, int64(190), pay(TargetLow, 100))
	assert.Zero(t, pay(TargetBlack, 100))
	assert.Zero(t, pay(TargetEven, 100))
	// Дробная часть отбрасывается
	assert.Equal(t, int64(1), pay(TargetRed, 1))
}

func TestValidateTarget(t *testing.T) {
	for _, ok := range []string{"0", "17", "36", TargetRed, TargetHigh} {
		assert.NoError(t, ValidateTarget(ok), ok)
	}
	for _, bad := range []string{"37", "-1", "07", "green", ""} {
		assert.ErrorIs(t, ValidateTarget(bad), model.ErrInvalidBet, bad)
	}
}

func TestDrawIsUniform(t *testing.T) {
	s, _ := newServ(2024, 0)
	const trials = 10000
	counts := make([]int, wheelSize)
	for i := 0; i < trials; i++ {
		counts[s.draw().Number]++
	}

	expected := float64(trials) / wheelSize
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	// 36 степеней свободы, критическое значение при alpha = 0.001
	assert.Less(t, chi2, 67.985)
}

func TestOutcomeDoesNotDependOnBets(t *testing.T) {
	ctx := context.Background()

	a, _ := newServ(99, 10_000)
	b, _ := newServ(99, 10_000)

	_, err := a.PlaceBet(ctx, userID, TargetRed, 100)
	require.NoError(t, err)
	_, err = b.PlaceBet(ctx, userID, "17", 500)
	require.NoError(t, err)
	_, err = b.PlaceBet(ctx, userID, TargetEven, 900)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		resA, err := a.Spin(ctx, userID)
		require.NoError(t, err)
		resB, err := b.Spin(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, resA.Outcome, resB.Outcome)

		_, err = a.PlaceBet(ctx, userID, TargetBlack, 10)
		require.NoError(t, err)
		_, err = b.PlaceBet(ctx, userID, "0", 10)
		require.NoError(t, err)
	}
}

func TestSpinSettlesAndRecordsHistory(t *testing.T) {
	ctx := context.Background()
	s, ledger := newServ(5, 1000)

	_, err := s.PlaceBet(ctx, userID, TargetRed, 100)
	require.NoError(t, err)

	res, err := s.Spin(ctx, userID)
	require.NoError(t, err)

	expected := Payout(res.Outcome)(TargetRed, 100)
	assert.Equal(t, expected, res.Payout)

	balance, _ := ledger.Balance(ctx, userID)
	assert.Equal(t, 900+expected, balance)

	list, err := s.History(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.RoundID, list[0].RoundID)
}

func TestSpinWithoutBetsIsNoop(t *testing.T) {
	s, _ := newServ(1, 100)
	_, err := s.Spin(context.Background(), userID)
	assert.ErrorIs(t, err, model.ErrEmptyRound)
}
