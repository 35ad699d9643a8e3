package cards

import "arcade_backend/internal/rng"

// Shoe колода для одного раунда. Когда карты кончаются, замешивается новая.
type Shoe struct {
	src   rng.Source
	cards []Card
}

// NewShoe перемешанная колода из decks полных колод
func NewShoe(src rng.Source, decks int) *Shoe {
	if decks < 1 {
		decks = 1
	}
	s := &Shoe{src: src}
	s.refill(decks)
	return s
}

// NewStackedShoe колода с заданным порядком карт, первая карта уходит первой.
// После исчерпания карт Draw паникует: в тестах порядок должен быть расписан полностью
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{cards: stacked}
}

func (s *Shoe) refill(decks int) {
	s.cards = make([]Card, 0, 52*decks)
	for d := 0; d < decks; d++ {
		for _, suit := range suits {
			for r := Ace; r <= King; r++ {
				s.cards = append(s.cards, Card{Rank: r, Suit: suit})
			}
		}
	}
	s.src.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		if s.src == nil {
			panic("cards: stacked shoe is empty")
		}
		s.refill(1)
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
