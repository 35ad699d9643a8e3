package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPickRespectsZeroWeights(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		idx := Pick(src, []int{0, 5, 0, 5})
		assert.Contains(t, []int{1, 3}, idx)
	}
}

func TestPickFollowsWeights(t *testing.T) {
	src := New(11)
	counts := make([]int, 2)
	for i := 0; i < 10000; i++ {
		counts[Pick(src, []int{9, 1})]++
	}
	// Ожидаем ~9000/1000, допуск широкий
	assert.InDelta(t, 9000, counts[0], 300)
	assert.InDelta(t, 1000, counts[1], 300)
}
