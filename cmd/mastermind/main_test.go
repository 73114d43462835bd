package main

import (
	"math/rand"
	"testing"
)

func TestEvaluateGuess(t *testing.T) {
	cases := []struct {
		name          string
		guess, target string
		wantDigits    int
		wantPositions int
	}{
		{"no matching digits", "1234", "5678", 0, 0},
		{"all digits wrong positions", "1234", "4321", 4, 0},
		{"partial match", "1234", "1256", 2, 2},
		{"mixed positions", "1234", "1432", 4, 2},
		{"duplicates in guess", "1122", "1234", 2, 1},
		{"duplicates in target", "1234", "1122", 2, 1},
		{"perfect match", "1234", "1234", 4, 4},
		{"empty strings", "", "", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stats := evaluateGuess(c.guess, c.target)
			if stats.correctDigits != c.wantDigits {
				t.Fatalf("evaluateGuess(%q, %q) correct digits = %d, want %d", c.guess, c.target, stats.correctDigits, c.wantDigits)
			}
			if stats.correctPositions != c.wantPositions {
				t.Fatalf("evaluateGuess(%q, %q) correct positions = %d, want %d", c.guess, c.target, stats.correctPositions, c.wantPositions)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 4, 8} {
		code := generateCode(n, rng)
		if len(code) != n {
			t.Fatalf("generateCode(%d) has length %d", n, len(code))
		}
		if !isValidGuess(code, n) {
			t.Fatalf("generateCode(%d) produced non-numeric code %q", n, code)
		}
	}
}

func TestIsValidGuess(t *testing.T) {
	cases := []struct {
		guess string
		want  bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isValidGuess(c.guess, 4); got != c.want {
			t.Fatalf("isValidGuess(%q, 4) = %v, want %v", c.guess, got, c.want)
		}
	}
}
