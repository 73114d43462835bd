package blackjack

import (
	"fmt"
	"strings"

	"gochallenges/internal/cards"
)

const Blackjack = 21

// Hand is an ordered, grow-only sequence of cards owned by one participant.
type Hand struct {
	Cards []cards.Card
}

func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card. A hand legally holds whatever it is given.
func (h *Hand) AddCard(c cards.Card) {
	h.Cards = append(h.Cards, c)
}

// Evaluate returns the blackjack total. Aces are resolved in hand order:
// each is tentatively worth 11 if that keeps the running total at or below
// 21, otherwise 1; if the total still busts, tentative 11s are demoted to 1
// one at a time until it no longer does. An empty hand scores 0.
func (h *Hand) Evaluate() int {
	sum := 0
	aces := 0
	for _, c := range h.Cards {
		switch {
		case c.Rank == cards.Ace:
			aces++
		case c.Rank >= cards.Ten:
			sum += 10
		default:
			sum += int(c.Rank)
		}
	}

	soft := 0
	for i := 0; i < aces; i++ {
		if sum+11 <= Blackjack {
			sum += 11
			soft++
		} else {
			sum++
		}
	}
	for sum > Blackjack && soft > 0 {
		sum -= 10
		soft--
	}
	return sum
}

func (h *Hand) String() string {
	var b strings.Builder
	for _, c := range h.Cards {
		fmt.Fprintf(&b, "\t%s\n", c)
	}
	return b.String()
}
