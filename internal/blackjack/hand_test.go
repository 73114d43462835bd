package blackjack

import (
	"testing"

	"gochallenges/internal/cards"
)

func handOf(ranks ...cards.Rank) *Hand {
	suits := cards.Suits()
	h := NewHand()
	for i, r := range ranks {
		h.AddCard(cards.Card{Rank: r, Suit: suits[i%len(suits)]})
	}
	return h
}

func TestEvaluate_EmptyHandScoresZero(t *testing.T) {
	if got := NewHand().Evaluate(); got != 0 {
		t.Fatalf("expected 0 for empty hand, got %d", got)
	}
}

func TestEvaluate_NoAces(t *testing.T) {
	tests := []struct {
		name  string
		ranks []cards.Rank
		want  int
	}{
		{"numbered cards", []cards.Rank{cards.Two, cards.Three, cards.Four}, 9},
		{"face cards count ten", []cards.Rank{cards.Jack, cards.Queen, cards.King}, 30},
		{"mixed", []cards.Rank{cards.Two, cards.Queen, cards.Seven}, 19},
		{"tens", []cards.Rank{cards.Ten, cards.Ten}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.ranks...).Evaluate(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestEvaluate_AceCountsElevenWhenItFits(t *testing.T) {
	if got := handOf(cards.Ace, cards.Five).Evaluate(); got != 16 {
		t.Fatalf("expected 16 (ace as 11), got %d", got)
	}
}

func TestEvaluate_AceDropsToOneToAvoidBust(t *testing.T) {
	if got := handOf(cards.Ace, cards.Ten, cards.Queen).Evaluate(); got != 21 {
		t.Fatalf("expected 21 (ace as 1), got %d", got)
	}
}

func TestEvaluate_TwoAcesAndNineScores21(t *testing.T) {
	if got := handOf(cards.Ace, cards.Ace, cards.Nine).Evaluate(); got != 21 {
		t.Fatalf("expected 21 (11+1+9), got %d", got)
	}
}

func TestEvaluate_AllAcesDemotedWhenNecessary(t *testing.T) {
	if got := handOf(cards.Ace, cards.Ace, cards.Ace, cards.King).Evaluate(); got != 13 {
		t.Fatalf("expected 13 (1+1+1+10), got %d", got)
	}
	if got := handOf(cards.Ace, cards.Ace, cards.Ace, cards.Ace, cards.King).Evaluate(); got != 14 {
		t.Fatalf("expected 14 (four aces as 1 + 10), got %d", got)
	}
}

func TestEvaluate_BustedHandStaysBusted(t *testing.T) {
	// An ace already counted as 1 is not eligible for demotion; the hand
	// stays over 21.
	if got := handOf(cards.King, cards.Queen, cards.Five, cards.Ace).Evaluate(); got != 26 {
		t.Fatalf("expected 26, got %d", got)
	}
}
