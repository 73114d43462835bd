package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

type guessStats struct {
	correctDigits    int
	correctPositions int
}

// evaluateGuess compares a guess to the target. Correct positions are exact
// matches; correct digits count membership regardless of position, with
// duplicates capped at the smaller occurrence count.
func evaluateGuess(guess, target string) guessStats {
	var stats guessStats
	for i := 0; i < len(guess) && i < len(target); i++ {
		if guess[i] == target[i] {
			stats.correctPositions++
		}
	}

	guessCounts := make(map[byte]int)
	targetCounts := make(map[byte]int)
	for i := 0; i < len(guess); i++ {
		guessCounts[guess[i]]++
	}
	for i := 0; i < len(target); i++ {
		targetCounts[target[i]]++
	}
	for c, gcount := range guessCounts {
		tcount := targetCounts[c]
		if gcount < tcount {
			stats.correctDigits += gcount
		} else {
			stats.correctDigits += tcount
		}
	}
	return stats
}

func generateCode(numDigits int, rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < numDigits; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

func isValidGuess(guess string, numDigits int) bool {
	if len(guess) != numDigits {
		return false
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < '0' || guess[i] > '9' {
			return false
		}
	}
	return true
}

func promptForGuess(p *cli.Prompter, numDigits int) (string, error) {
	for {
		guess, err := p.ReadLine(fmt.Sprintf("Enter a %d-digit guess: ", numDigits))
		if err != nil {
			return "", err
		}
		if !isValidGuess(guess, numDigits) {
			p.Printf("Invalid input. Please enter a %d-digit number.\n", numDigits)
			continue
		}
		return guess, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cli.NewStdio()
	rng := rand.New(rand.NewSource(rand.Int63()))

	target := generateCode(cfg.MastermindDigits, rng)
	for i := 0; i < cfg.MastermindGuesses; i++ {
		guess, err := promptForGuess(p, cfg.MastermindDigits)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		stats := evaluateGuess(guess, target)
		if stats.correctPositions == cfg.MastermindDigits {
			p.Printf("Congratulations! You've guessed the code.\n")
			return
		}
		p.Printf("Correct digits: %d, correct positions: %d\n", stats.correctDigits, stats.correctPositions)
	}
}
