package main

import (
	"fmt"
	"math/rand"
	"os"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

type guess int

const (
	guessHigher guess = iota
	guessLower
)

// guessedRight reports whether the guess called the move from prev to next.
// Equal numbers count against the player either way.
func guessedRight(g guess, prev, next int) bool {
	return (next > prev && g == guessHigher) || (next < prev && g == guessLower)
}

func promptForGuess(p *cli.Prompter) (guess, error) {
	choice, err := p.AskChoice("Higher(H) or Lower(L)?", "H", "L")
	if err != nil {
		return 0, err
	}
	if choice == "h" {
		return guessHigher, nil
	}
	return guessLower, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cli.NewStdio()
	rng := rand.New(rand.NewSource(rand.Int63()))

	p.Printf("You will be presented with a random number between 1 and %d.\n", cfg.HigherLowerMax)
	p.Printf("You must guess if the next number will be higher or lower.\n")
	p.Printf("You must guess correctly %d times in a row to win.\n", cfg.HigherLowerToWin)
	if err := p.WaitEnter("Press Enter to continue."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	correct := 0
	prev := rng.Intn(cfg.HigherLowerMax) + 1
	for life := 0; life < cfg.HigherLowerLives; life++ {
		for round := 0; round < cfg.HigherLowerMax; round++ {
			p.Printf("Starting number: %d\n", prev)
			g, err := promptForGuess(p)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			next := rng.Intn(cfg.HigherLowerMax) + 1
			if guessedRight(g, prev, next) {
				correct++
			}
			prev = next
		}

		if correct >= cfg.HigherLowerToWin {
			break
		}
		if life < cfg.HigherLowerLives-1 {
			p.Printf("Sorry, you lost. You have %d lives remaining.\n", cfg.HigherLowerLives-life-1)
			if err := p.WaitEnter("Press Enter to continue."); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			correct = 0
		}
	}

	if correct >= cfg.HigherLowerToWin {
		p.Printf("Congratulations! You won!\n")
	} else {
		p.Printf("Sorry, you lost. Better luck next time!\n")
	}
}
