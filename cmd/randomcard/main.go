package main

import (
	"fmt"
	"math/rand"
	"os"

	"gochallenges/internal/cards"
	"gochallenges/internal/cli"
)

func randomCard(rng *rand.Rand) cards.Card {
	suits := cards.Suits()
	ranks := cards.Ranks()
	return cards.Card{
		Suit: suits[rng.Intn(len(suits))],
		Rank: ranks[rng.Intn(len(ranks))],
	}
}

func main() {
	p := cli.NewStdio()
	rng := rand.New(rand.NewSource(rand.Int63()))
	fmt.Println("This program generates a random card from a deck of cards.")
	for {
		fmt.Printf("Your card is: %s\n", randomCard(rng))

		answer, err := p.ReadLine("Do you want another card? (yes/no)")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if answer != "yes" {
			break
		}
	}
}
