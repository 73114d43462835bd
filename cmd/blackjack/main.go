package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gochallenges/internal/blackjack"
	"gochallenges/internal/cli"
	"gochallenges/internal/coach"
	"gochallenges/internal/config"
)

func printHand(p *cli.Prompter, label string, h *blackjack.Hand) {
	p.Printf("%s: \n", label)
	for _, c := range h.Cards {
		p.Printf("\t%s\n", c)
	}
}

func adviseMove(p *cli.Prompter, c *coach.Coach, hand *blackjack.Hand) {
	if c == nil {
		p.Printf("Coach says: %s\n", coach.RuleAdvice(hand.Evaluate()))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	move, err := c.Advise(ctx, hand)
	if err != nil {
		p.Errorf("Coach unavailable: %v\n", err)
		move = coach.RuleAdvice(hand.Evaluate())
	}
	p.Printf("Coach says: %s\n", move)
}

func main() {
	useCoach := flag.Bool("coach", false, "suggest a move before each decision")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cli.NewStdio()

	var advisor *coach.Coach
	if *useCoach {
		_ = godotenv.Load()
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			advisor = coach.New(key, cfg.OpenAIModel)
		} else {
			p.Errorf("OPENAI_API_KEY not set; falling back to fixed-threshold advice.\n")
		}
	}

	game := blackjack.NewGame()
	for game.Stage == blackjack.StagePlayerTurn {
		printHand(p, "Your hand", game.PlayerHand)
		if *useCoach {
			adviseMove(p, advisor, game.PlayerHand)
		}

		move, err := p.AskChoice("Do you want to hit(H) or stand(S)?", "H", "S")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if move == "s" {
			if err := game.Stand(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			printHand(p, "Dealer hand", game.DealerHand)
			continue
		}

		card, err := game.Hit()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if game.DeckExhausted {
			p.Printf("No more cards in the deck.\n")
			continue
		}
		p.Printf("You drew: %s\n", card)
	}

	switch game.Result {
	case blackjack.OutcomePlayerBust:
		p.Printf("Bust! Your hand is over 21.\n")
	case blackjack.OutcomePlayerWins:
		p.Printf("You win!\n")
	case blackjack.OutcomeDealerWins:
		p.Printf("You lose!\n")
	case blackjack.OutcomeTie:
		p.Printf("It's a tie!\n")
	}
}
