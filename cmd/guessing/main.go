package main

import (
	"fmt"
	"math/rand"
	"os"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

func humanGameLoop(p *cli.Prompter, rng *rand.Rand, min, max int) error {
	num := min + rng.Intn(max-min+1)
	attempts := 0
	for {
		attempts++
		guess, err := p.AskInt("Enter your guess: ", min, max)
		if err != nil {
			return err
		}
		switch {
		case guess < num:
			p.Printf("Too low!\n")
		case guess > num:
			p.Printf("Too high!\n")
		default:
			p.Printf("Got it!\n")
			p.Printf("It took you %d attempts to guess the number.\n", attempts)
			return nil
		}
	}
}

func computerGameLoop(p *cli.Prompter, min, max int) error {
	left, right := min, max
	attempts := 0
	for {
		guess := (left + right) / 2
		attempts++
		p.Printf("The computer guesses: %d\n", guess)
		answer, err := p.AskChoice("Was the guess too high(H), too low(L), or correct(C)?", "H", "L", "C")
		if err != nil {
			return err
		}
		switch answer {
		case "l":
			left = guess + 1
		case "h":
			right = guess - 1
		case "c":
			p.Printf("It took the computer %d attempts to guess the number.\n", attempts)
			return nil
		}
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

	p.Printf("This is a guessing gaming. A number is chosen between %d and %d.\n", cfg.GuessMin, cfg.GuessMax)
	p.Printf("The player must guess the number to win.\n")
	if err := p.WaitEnter("Press Enter to continue."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	mode, err := p.AskChoice("Do you want to be the guesser? (y/n)", "y", "n")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if mode == "y" {
		err = humanGameLoop(p, rng, cfg.GuessMin, cfg.GuessMax)
	} else {
		err = computerGameLoop(p, cfg.GuessMin, cfg.GuessMax)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
