// Package scout разведчик новостей поверх текстовой модели
package scout

import (
	"arcade_backend/internal/client/llm"
	"arcade_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const promptTemplate = `Find one recent, real news story about "%s" in the category "%s".
Answer with a single JSON object and nothing else:
{"title": "...", "summary": "two or three sentences", "source_name": "...", "source_url": "https://..."}
If you cannot find anything, answer with null.`

const maxTitleRunes = 120

type Scout struct {
	llm llm.Completer
}

func NewScout(c llm.Completer) *Scout {
	return &Scout{llm: c}
}

// Scout nil без ошибки - модель ничего не нашла. Неразборчивый ответ - model.ErrMalformedPayload
func (s *Scout) Scout(ctx context.Context, topic, category string) (*model.ScoutReport, error) {
	text, err := s.llm.Complete(ctx, fmt.Sprintf(promptTemplate, topic, category))
	if err != nil {
		return nil, err
	}
	return ParseReport(text)
}

// ParseReport терпит markdown-ограждения и текст вокруг объекта
func ParseReport(text string) (*model.ScoutReport, error) {
	body := stripFences(strings.TrimSpace(text))
	if body == "" {
		return nil, errors.Wrap(model.ErrMalformedPayload, "empty scout answer")
	}
	if strings.EqualFold(body, "null") {
		return nil, nil
	}

	start, end := strings.Index(body, "{"), strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return nil, errors.Wrap(model.ErrMalformedPayload, "no json object in scout answer")
	}

	var report model.ScoutReport
	if err := json.Unmarshal([]byte(body[start:end+1]), &report); err != nil {
		return nil, errors.Wrapf(model.ErrMalformedPayload, "scout json: %v", err)
	}

	report.Title = strings.TrimSpace(report.Title)
	report.Summary = strings.TrimSpace(report.Summary)
	if report.Title == "" || report.Summary == "" {
		return nil, errors.Wrap(model.ErrMalformedPayload, "scout answer without title or summary")
	}
	if r := []rune(report.Title); len(r) > maxTitleRunes {
		report.Title = string(r[:maxTitleRunes])
	}
	return &report, nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Язык после ограждения: ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
