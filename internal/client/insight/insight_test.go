package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	text string
	err  error
}

func (s stubLLM) Complete(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "the stars agree", NewInsight(stubLLM{text: " the stars agree\n"}, "fb").Complete(ctx, "p"))
	assert.Equal(t, "fb", NewInsight(stubLLM{err: errors.New("timeout")}, "fb").Complete(ctx, "p"))
	assert.Equal(t, "fb", NewInsight(stubLLM{text: "   "}, "fb").Complete(ctx, "p"))
	assert.Equal(t, "fb", NewInsight(nil, "fb").Complete(ctx, "p"))
}
