package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gochallenges/internal/cli"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func isValidAlphabet(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == alphabet
}

func main() {
	p := cli.NewStdio()
	fmt.Println("This is a game to see how fast you can type the alphabet.")
	if err := p.WaitEnter("Press Enter to start the game."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	best := math.Inf(1)
	for {
		fmt.Println("Start typing, press enter to submit!")
		start := time.Now()

		input, err := p.ReadLine("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			break
		}
		elapsed := time.Since(start).Seconds()

		if isValidAlphabet(input) {
			fmt.Printf("You typed the alphabet in %.2f seconds!\n", elapsed)
			best = math.Min(best, elapsed)
		} else {
			fmt.Println("You didn't type the alphabet correctly. Try again!")
		}

		again, err := p.ReadLine("Press Enter to play again or 'q' to quit.")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			break
		}
		if again == "q" {
			break
		}
	}

	if !math.IsInf(best, 1) {
		fmt.Printf("Your best time was %.2f seconds!\n", best)
	}
}
