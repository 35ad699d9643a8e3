package dice

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

func TestPayoutByMatchCount(t *testing.T) {
	out := model.DiceOutcome{"crab", "fish", "crab"}
	pay := Payout(out)

	assert.Equal(t, int64(300), pay("crab", 100))
	assert.Equal(t, int64(200), pay("fish", 100))
	assert.Zero(t, pay("deer", 100))

	triple := Payout(model.DiceOutcome{"deer", "deer", "deer"})
	assert.Equal(t, int64(400), triple("deer", 100))
}

func TestRollSettlesEveryTarget(t *testing.T) {
	ctx := context.Background()
	ledger := ledger_repo.NewMemoryLedger()
	ledger.SetBalance(1, 1000)
	s := NewDiceService(ledger, history_repo.NewMemoryHistoryRepository(0), rng.New(3)).(*serv)

	for _, sym := range Symbols {
		_, err := s.PlaceBet(ctx, 1, sym, 100)
		require.NoError(t, err)
	}

	res, err := s.Roll(ctx, 1)
	require.NoError(t, err)

	// На каждый кубик ровно один символ совпадает: 3 совпадения суммарно
	matched := map[string]bool{}
	for _, face := range res.Outcome {
		matched[face] = true
	}
	expected := int64(len(matched))*100 + 3*100
	assert.Equal(t, expected, res.Payout)

	balance, _ := ledger.Balance(ctx, 1)
	assert.Equal(t, 400+expected, balance)
}

func TestDrawFacesAreIndependent(t *testing.T) {
	s := &serv{rng: rng.New(17)}
	repeats := 0
	for i := 0; i < 2000; i++ {
		out := s.draw()
		if out[0] == out[1] {
			repeats++
		}
		for _, face := range out {
			require.NoError(t, ValidateTarget(face))
		}
	}
	// P(совпадение двух граней) = 1/6
	assert.InDelta(t, 2000.0/6, float64(repeats), 60)
}

func TestUnknownSymbolRejected(t *testing.T) {
	ledger := ledger_repo.NewMemoryLedger()
	ledger.SetBalance(1, 100)
	s := NewDiceService(ledger, history_repo.NewMemoryHistoryRepository(0), rng.New(1))

	_, err := s.PlaceBet(context.Background(), 1, "dragon", 10)
	assert.ErrorIs(t, err, model.ErrInvalidBet)
	balance, _ := ledger.Balance(context.Background(), 1)
	assert.Equal(t, int64(100), balance)
}
