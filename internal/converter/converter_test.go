package converter

import (
	"testing"
	"time"

	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestToHistoryResponseNet(t *testing.T) {
	res := ToHistoryResponse([]model.RoundRecord{{RoundID: "r", Stake: 100, Payout: 250, At: time.Unix(0, 0)}})
	assert.Len(t, res.Rounds, 1)
	assert.Equal(t, int64(150), res.Rounds[0].Net)
}

func TestToReelsSpinResponseStake(t *testing.T) {
	res := ToReelsSpinResponse(&model.Resolution[model.ReelOutcome]{
		Bets: map[string]int64{"lines": 50},
		Outcome: model.ReelOutcome{
			LineWins: []model.LineWin{{Line: 2, Symbol: "seven", Multiplier: 50, Payout: 500}},
		},
		Payout: 500,
	})
	assert.Equal(t, int64(50), res.Stake)
	assert.Equal(t, 2, res.LineWins[0].Line)
}

func TestToHandResponseCards(t *testing.T) {
	res := ToHandResponse(&model.BlackjackHand{
		Player: cards.Hand{{Rank: cards.Ace, Suit: cards.Spades}, {Rank: 10, Suit: cards.Hearts}},
	})
	assert.Equal(t, []string{"AS", "10H"}, res.Player)
	assert.Empty(t, res.DealerDraws)
}

func TestFeedItemTagsNeverNull(t *testing.T) {
	assert.NotNil(t, ToFeedItemResponse(&model.FeedItem{}).Tags)
}
