package fortune

import (
	"context"
	"strings"
	"testing"

	"arcade_backend/internal/model"
	"arcade_backend/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoOracle struct {
	prompt string
}

func (o *echoOracle) Complete(_ context.Context, prompt string) string {
	o.prompt = prompt
	return "reading"
}

func TestDrawUsesCardInPrompt(t *testing.T) {
	oracle := &echoOracle{}
	s := NewFortuneService(rng.New(7), oracle)

	res, err := s.Draw(context.Background(), 1, "Will I win tonight?")
	require.NoError(t, err)
	assert.Contains(t, MajorArcana[:], res.Card)
	assert.Equal(t, "reading", res.Reading)
	assert.Contains(t, oracle.prompt, res.Card)
	assert.Contains(t, oracle.prompt, "Will I win tonight?")
}

func TestDrawIsDeterministicForSeed(t *testing.T) {
	a, err := NewFortuneService(rng.New(11), nil).Draw(context.Background(), 1, "q")
	require.NoError(t, err)
	b, err := NewFortuneService(rng.New(11), nil).Draw(context.Background(), 1, "q")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, FallbackReading, a.Reading)
}

func TestDrawCoversDeck(t *testing.T) {
	s := NewFortuneService(rng.New(3), nil)
	seen := map[string]bool{}
	reversed := 0
	for i := 0; i < 2000; i++ {
		res, err := s.Draw(context.Background(), 1, "q")
		require.NoError(t, err)
		seen[res.Card] = true
		if res.Reversed {
			reversed++
		}
	}
	assert.Len(t, seen, len(MajorArcana))
	assert.InDelta(t, 1000, reversed, 150)
}

func TestDrawRejectsBadQuestion(t *testing.T) {
	s := NewFortuneService(rng.New(1), nil)

	_, err := s.Draw(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = s.Draw(context.Background(), 1, strings.Repeat("я", maxQuestionRunes+1))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
