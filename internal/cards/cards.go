package cards

import (
	"fmt"
	"math/rand"
)

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}

func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "Unknown"
	}
	return suitNames[s]
}

// Suits lists every suit in deck-building order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "Unknown"
	}
	return rankNames[r-1]
}

// Ranks lists every rank in deck-building order.
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Deck owns every card not yet dealt. Dealt cards belong to whoever
// received them.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 canonical cards, unshuffled.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the deck order in place. Membership is unchanged.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. The second return is false once
// the deck is exhausted; repeated calls keep returning false.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Len reports how many cards remain undealt.
func (d *Deck) Len() int {
	return len(d.cards)
}
