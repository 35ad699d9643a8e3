package cards

import (
	"testing"

	"arcade_backend/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r Rank) Card { return Card{Rank: r, Suit: Spades} }

func TestBlackjackTotal(t *testing.T) {
	tests := []struct {
		name  string
		hand  Hand
		total int
		soft  bool
	}{
		{"faces are ten", Hand{c(King), c(Queen)}, 20, false},
		{"ace as eleven", Hand{c(Ace), c(9)}, 20, true},
		{"natural", Hand{c(Ace), c(Jack)}, 21, true},
		{"ace drops to one", Hand{c(Ace), c(9), c(5)}, 15, false},
		{"two aces", Hand{c(Ace), c(Ace)}, 12, true},
		{"three aces and nine", Hand{c(Ace), c(Ace), c(Ace), c(9)}, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, soft := BlackjackTotal(tt.hand)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.soft, soft)
		})
	}
}

func TestIsBustForEveryAceChoice(t *testing.T) {
	assert.True(t, IsBust(Hand{c(King), c(Queen), c(2)}))
	assert.True(t, IsBust(Hand{c(Ace), c(Ace), c(King), c(Queen)}))
	assert.False(t, IsBust(Hand{c(Ace), c(King), c(Queen)}))
	assert.False(t, IsBust(Hand{c(Ace), c(Ace), c(King), c(9)}))
	assert.False(t, IsBust(Hand{c(Ace), c(Ace), c(9)}))
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(Hand{c(Ace), c(10)}))
	assert.False(t, IsNatural(Hand{c(7), c(7), c(7)}))
}

func TestBaccaratPoint(t *testing.T) {
	assert.Equal(t, 0, BaccaratPoint(Hand{c(King), c(10)}))
	assert.Equal(t, 7, BaccaratPoint(Hand{c(9), c(8)}))
	assert.Equal(t, 9, BaccaratPoint(Hand{c(Ace), c(8), c(Queen)}))
	assert.Equal(t, 5, BaccaratPoint(Hand{c(6), c(9)}))
}

func TestShoeDealsFullDeck(t *testing.T) {
	s := NewShoe(rng.New(1), 1)
	require.Equal(t, 52, s.Remaining())

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		seen[s.Draw()] = true
	}
	assert.Len(t, seen, 52)

	// Пустая колода замешивается заново
	s.Draw()
	assert.Equal(t, 51, s.Remaining())
}

func TestStackedShoeOrder(t *testing.T) {
	s := NewStackedShoe(c(2), c(3))
	assert.Equal(t, Rank(2), s.Draw().Rank)
	assert.Equal(t, Rank(3), s.Draw().Rank)
	assert.Panics(t, func() { s.Draw() })
}
