package blackjack

import (
	"errors"

	"gochallenges/internal/cards"
)

type Stage string

const (
	StagePlayerTurn Stage = "player_turn"
	StageDealerTurn Stage = "dealer_turn"
	StageResolved   Stage = "resolved"
)

type Outcome string

const (
	OutcomePlayerWins Outcome = "player_wins"
	OutcomeDealerWins Outcome = "dealer_wins"
	OutcomeTie        Outcome = "tie"
	OutcomePlayerBust Outcome = "player_bust"
)

var ErrGameOver = errors.New("game already resolved")

// Game runs a single round: the deck is built and shuffled once, the player
// hits or stands, then a fixed two-card dealer hand decides the result.
type Game struct {
	Deck       *cards.Deck
	PlayerHand *Hand
	DealerHand *Hand
	Stage      Stage
	Result     Outcome

	// DeckExhausted is set when a hit found no card left to deal.
	DeckExhausted bool
}

// NewGame shuffles a fresh deck and deals the player's opening two cards.
func NewGame() *Game {
	g := &Game{
		Deck:       cards.NewDeck(),
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
		Stage:      StagePlayerTurn,
	}
	g.Deck.Shuffle()
	for i := 0; i < 2; i++ {
		if c, ok := g.Deck.Deal(); ok {
			g.PlayerHand.AddCard(c)
		}
	}
	return g
}

// Hit draws one card into the player's hand. A total over 21 resolves the
// round as a bust. Running out of cards resolves the round by comparison of
// the hands as they stand.
func (g *Game) Hit() (cards.Card, error) {
	if g.Stage != StagePlayerTurn {
		return cards.Card{}, ErrGameOver
	}
	c, ok := g.Deck.Deal()
	if !ok {
		g.DeckExhausted = true
		g.resolve()
		return cards.Card{}, nil
	}
	g.PlayerHand.AddCard(c)
	if g.PlayerHand.Evaluate() > Blackjack {
		g.Stage = StageResolved
		g.Result = OutcomePlayerBust
	}
	return c, nil
}

// Stand ends the player's turn, deals the dealer hand, and resolves.
func (g *Game) Stand() error {
	if g.Stage != StagePlayerTurn {
		return ErrGameOver
	}
	g.Stage = StageDealerTurn
	g.resolve()
	return nil
}

func (g *Game) resolve() {
	for len(g.DealerHand.Cards) < 2 {
		c, ok := g.Deck.Deal()
		if !ok {
			break
		}
		g.DealerHand.AddCard(c)
	}
	player := g.PlayerHand.Evaluate()
	dealer := g.DealerHand.Evaluate()
	switch {
	case player > dealer:
		g.Result = OutcomePlayerWins
	case player < dealer:
		g.Result = OutcomeDealerWins
	default:
		g.Result = OutcomeTie
	}
	g.Stage = StageResolved
}
