package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gochallenges/internal/cli"
)

type move int

const (
	rock move = iota
	paper
	scissors
)

func (m move) String() string {
	switch m {
	case rock:
		return "Rock"
	case paper:
		return "Paper"
	default:
		return "Scissors"
	}
}

func parseMove(input string) (move, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "rock":
		return rock, true
	case "paper":
		return paper, true
	case "scissors":
		return scissors, true
	default:
		return 0, false
	}
}

func playerWins(player, computer move) bool {
	return (player == rock && computer == scissors) ||
		(player == paper && computer == rock) ||
		(player == scissors && computer == paper)
}

func randMove(rng *rand.Rand) move {
	return move(rng.Intn(3))
}

func main() {
	p := cli.NewStdio()
	rng := rand.New(rand.NewSource(rand.Int63()))

	if err := p.WaitEnter("Play a game of Rock, Paper, Scissors. Press ENTER to begin."); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
		return
	}

	for {
		input, err := p.ReadLine("Enter your move (rock, paper, or scissors): ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
			return
		}
		playerMove, ok := parseMove(input)
		if !ok {
			fmt.Println("Invalid move. Please try again.")
			continue
		}
		computerMove := randMove(rng)

		switch {
		case playerWins(playerMove, computerMove):
			fmt.Printf("You win! You chose %s and the computer chose %s.\n", playerMove, computerMove)
		case playerMove == computerMove:
			fmt.Printf("It's a tie! You both chose %s.\n", playerMove)
		default:
			fmt.Printf("You lose! You chose %s and the computer chose %s.\n", playerMove, computerMove)
		}

		again, err := p.ReadLine("Press ENTER to play again or type 'q' to quit.")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
			return
		}
		if again == "q" {
			break
		}
	}
}
