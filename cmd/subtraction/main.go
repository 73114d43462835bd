package main

import (
	"fmt"
	"math/rand"
	"os"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

// aiMove picks the computer's deduction. With 1-3 remaining the game is
// decided, so it plays the forced move; otherwise it moves at random.
func aiMove(num int, rng *rand.Rand) int {
	switch num {
	case 1:
		return 1
	case 2:
		return 1
	case 3:
		return 2
	default:
		return rng.Intn(3) + 1
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

	p.Printf("In this game, you are presented with a random starting number.\n")
	p.Printf("Each round, you must chose a number in the range 1-%d to subtract from the starting number.\n", cfg.SubtractTakeMax)
	p.Printf("The player who reaches 0 is the loser.\n")
	if err := p.WaitEnter("Press Enter to start the game.\n"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	num := cfg.SubtractStartMin + rng.Intn(cfg.SubtractStartMax-cfg.SubtractStartMin+1)
	playerTurn := true
	for {
		p.Printf("The current number is: %d\n", num)

		var deduction int
		if playerTurn {
			deduction, err = p.AskInt("How many do you want to remove? \n", 1, cfg.SubtractTakeMax)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			p.Printf("Player removed: %d\n", deduction)
		} else {
			deduction = aiMove(num, rng)
			p.Printf("Computer removed: %d\n", deduction)
		}

		num -= deduction
		if num < 0 {
			num = 0
		}
		p.Printf("%d left.\n", num)

		if num == 0 {
			if playerTurn {
				p.Printf("You lost!\n")
			} else {
				p.Printf("You won!\n")
			}
			return
		}
		playerTurn = !playerTurn
	}
}
