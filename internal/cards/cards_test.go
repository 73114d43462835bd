package cards

import "testing"

func TestNewDeck_Has52DistinctCards(t *testing.T) {
	d := NewDeck()
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}
	seen := map[Card]bool{}
	for {
		c, ok := d.Deal()
		if !ok {
			break
		}
		if seen[c] {
			t.Fatalf("duplicate card dealt: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
	for _, s := range Suits() {
		for _, r := range Ranks() {
			if !seen[Card{Rank: r, Suit: s}] {
				t.Fatalf("missing card: %s of %s", r, s)
			}
		}
	}
}

func TestDeal_SignalsEmptyAfterExhaustion(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 52; i++ {
		if _, ok := d.Deal(); !ok {
			t.Fatalf("deck exhausted early at card %d", i)
		}
	}
	// Repeated deals on an empty deck keep signalling emptiness.
	for i := 0; i < 3; i++ {
		if _, ok := d.Deal(); ok {
			t.Fatalf("expected empty signal on deal %d after exhaustion", i)
		}
	}
}

func TestShuffle_PreservesMembership(t *testing.T) {
	d := NewDeck()
	d.Shuffle()
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards after shuffle, got %d", d.Len())
	}
	seen := map[Card]bool{}
	for {
		c, ok := d.Deal()
		if !ok {
			break
		}
		if seen[c] {
			t.Fatalf("duplicate card after shuffle: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards after shuffle, got %d", len(seen))
	}
}

func TestCard_String(t *testing.T) {
	c := Card{Rank: Queen, Suit: Hearts}
	if got := c.String(); got != "Queen of Hearts" {
		t.Fatalf("expected %q, got %q", "Queen of Hearts", got)
	}
}
