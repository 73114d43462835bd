package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMove_AcceptsValidInput(t *testing.T) {
	for _, in := range []string{"rock", "Rock", "ROCK", "rock ", " rock"} {
		m, ok := parseMove(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, rock, m)
	}
	for _, in := range []string{"paper", "Paper", "PAPER"} {
		m, ok := parseMove(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, paper, m)
	}
	for _, in := range []string{"scissors", "Scissors", "SCISSORS"} {
		m, ok := parseMove(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, scissors, m)
	}
}

func TestParseMove_RejectsInvalidInput(t *testing.T) {
	for _, in := range []string{"", "invalid", "123", "scissor"} {
		_, ok := parseMove(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestPlayerWins(t *testing.T) {
	assert.True(t, playerWins(rock, scissors))
	assert.True(t, playerWins(paper, rock))
	assert.True(t, playerWins(scissors, paper))

	assert.False(t, playerWins(rock, rock))
	assert.False(t, playerWins(paper, paper))
	assert.False(t, playerWins(scissors, scissors))

	assert.False(t, playerWins(scissors, rock))
	assert.False(t, playerWins(rock, paper))
	assert.False(t, playerWins(paper, scissors))
}

func TestRandMove_ReturnsValidMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[move]bool{}
	for i := 0; i < 50; i++ {
		m := randMove(rng)
		assert.GreaterOrEqual(t, int(m), int(rock))
		assert.LessOrEqual(t, int(m), int(scissors))
		seen[m] = true
	}
	assert.Len(t, seen, 3, "all moves should show up over 50 draws")
}
