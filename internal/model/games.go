package model

import "arcade_backend/internal/game/cards"

// Blackjack

type BlackjackPhase string

const (
	BlackjackBetting    BlackjackPhase = "betting"
	BlackjackPlayerTurn BlackjackPhase = "player_turn"
	BlackjackDealerTurn BlackjackPhase = "dealer_turn"
	BlackjackSettled    BlackjackPhase = "settled"
)

type BlackjackOutcome string

const (
	OutcomeNone          BlackjackOutcome = ""
	OutcomeNatural       BlackjackOutcome = "blackjack"
	OutcomeCharlie       BlackjackOutcome = "charlie"
	OutcomeWin           BlackjackOutcome = "win"
	OutcomePush          BlackjackOutcome = "push"
	OutcomeLose          BlackjackOutcome = "lose"
	OutcomeBust          BlackjackOutcome = "bust"
	OutcomeDealerBust    BlackjackOutcome = "dealer_bust"
	OutcomeDealerNatural BlackjackOutcome = "dealer_blackjack"
)

// BlackjackHand снимок руки для клиента
type BlackjackHand struct {
	RoundID     string
	Phase       BlackjackPhase
	Player      cards.Hand
	Dealer      cards.Hand // Пока ход игрока, закрытая карта дилера не отдаётся
	DealerDraws cards.Hand // Карты добора дилера по порядку, для поочерёдного показа
	PlayerTotal int
	DealerTotal int
	Stake       int64
	Doubled     bool
	Outcome     BlackjackOutcome
	Payout      int64
	Balance     int64
}

// Baccarat

type BaccaratOutcome struct {
	Player      cards.Hand
	Banker      cards.Hand
	PlayerPoint int
	BankerPoint int
	Winner      string // player | banker | tie
}

// Roulette

type RouletteColor string

const (
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
	ColorGreen RouletteColor = "green"
)

type Segment struct {
	Number int
	Color  RouletteColor
}

// Dice

type DiceOutcome [3]string

// Reels

type ReelGrid [3][3]string

type LineWin struct {
	Line       int
	Symbol     string
	Multiplier int
	Payout     int64
}

type ReelOutcome struct {
	Grid     ReelGrid
	LineWins []LineWin
}

// Fortune

type FortuneReading struct {
	Card     string
	Reversed bool
	Reading  string
}
