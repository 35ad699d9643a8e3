// Package cards карты, руки и подсчёт очков для блэкджека и баккары
package cards

import "fmt"

type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

var suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Rank 1 - туз, 11..13 - валет, дама, король
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case Ace:
		r = "A"
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	default:
		r = fmt.Sprint(int(c.Rank))
	}
	return r + string(c.Suit)
}

// Value номинал для блэкджека: картинки 10, туз 1 (11 решает BlackjackTotal)
func (c Card) Value() int {
	if c.Rank >= 10 {
		return 10
	}
	return int(c.Rank)
}

// BaccaratValue десятки и картинки дают 0
func (c Card) BaccaratValue() int {
	if c.Rank >= 10 {
		return 0
	}
	return int(c.Rank)
}

type Hand []Card

// BlackjackTotal лучшая сумма руки: один туз считается за 11, если сумма не превышает 21.
// soft = true, если туз сейчас посчитан как 11
func BlackjackTotal(h Hand) (total int, soft bool) {
	hasAce := false
	for _, c := range h {
		total += c.Value()
		if c.Rank == Ace {
			hasAce = true
		}
	}
	if hasAce && total+10 <= 21 {
		return total + 10, true
	}
	return total, false
}

// IsBust перебор при любом выборе значения тузов
func IsBust(h Hand) bool {
	total, _ := BlackjackTotal(h)
	return total > 21
}

// IsNatural 21 с двух карт
func IsNatural(h Hand) bool {
	total, _ := BlackjackTotal(h)
	return len(h) == 2 && total == 21
}

// BaccaratPoint сумма по модулю 10
func BaccaratPoint(h Hand) int {
	sum := 0
	for _, c := range h {
		sum += c.BaccaratValue()
	}
	return sum % 10
}

func (h Hand) Strings() []string {
	res := make([]string, len(h))
	for i, c := range h {
		res[i] = c.String()
	}
	return res
}
