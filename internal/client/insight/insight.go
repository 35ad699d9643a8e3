// Package insight короткие тексты от модели. Ошибок наружу не отдаёт
package insight

import (
	"arcade_backend/internal/client/llm"
	"arcade_backend/internal/logger"
	"context"
	"strings"

	"go.uber.org/zap"
)

type Insight struct {
	llm      llm.Completer
	fallback string
}

func NewInsight(c llm.Completer, fallback string) *Insight {
	return &Insight{llm: c, fallback: fallback}
}

// Complete при ошибке или пустом ответе возвращает запасной текст
func (i *Insight) Complete(ctx context.Context, prompt string) string {
	if i.llm == nil {
		return i.fallback
	}
	text, err := i.llm.Complete(ctx, prompt)
	if err != nil {
		logger.Warn("insight: completion failed, using fallback", zap.Error(err))
		return i.fallback
	}
	if text = strings.TrimSpace(text); text == "" {
		return i.fallback
	}
	return text
}
