package fortune

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const maxQuestionRunes = 500

// FallbackReading текст, если модель недоступна
const FallbackReading = "The cards are quiet today. Sit with the card you drew and ask again later."

// Старшие арканы
var MajorArcana = [22]string{
	"The Fool", "The Magician", "The High Priestess", "The Empress", "The Emperor",
	"The Hierophant", "The Lovers", "The Chariot", "Strength", "The Hermit",
	"Wheel of Fortune", "Justice", "The Hanged Man", "Death", "Temperance",
	"The Devil", "The Tower", "The Star", "The Moon", "The Sun",
	"Judgement", "The World",
}

// Oracle текст толкования, при сбое возвращает запасной текст
type Oracle interface {
	Complete(ctx context.Context, prompt string) string
}

type serv struct {
	rng    rng.Source
	oracle Oracle
}

func NewFortuneService(src rng.Source, oracle Oracle) service.FortuneService {
	return &serv{rng: src, oracle: oracle}
}

// Draw одна карта, прямая или перевёрнутая, и толкование на вопрос
func (s *serv) Draw(ctx context.Context, _ int64, question string) (*model.FortuneReading, error) {
	question = strings.TrimSpace(question)
	if question == "" || utf8.RuneCountInString(question) > maxQuestionRunes {
		return nil, errors.Wrapf(model.ErrInvalidInput, "question must be 1..%d characters", maxQuestionRunes)
	}

	card := MajorArcana[s.rng.Intn(len(MajorArcana))]
	reversed := s.rng.Intn(2) == 1

	position := "upright"
	if reversed {
		position = "reversed"
	}
	prompt := fmt.Sprintf(
		"You are a gentle tarot reader. The querent asks: %q. They drew %s (%s). "+
			"Give a short reading of three sentences. No disclaimers.",
		question, card, position,
	)

	reading := FallbackReading
	if s.oracle != nil {
		reading = s.oracle.Complete(ctx, prompt)
	}

	return &model.FortuneReading{
		Card:     card,
		Reversed: reversed,
		Reading:  reading,
	}, nil
}
