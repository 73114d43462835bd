package main

import (
	"fmt"
	"os"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
	"gochallenges/internal/results"
)

func addResult(p *cli.Prompter, store *results.MemoryStore) error {
	homeTeam, err := p.ReadLine("Enter the home team: ")
	if err != nil {
		return err
	}
	homeScore, err := p.AskInt("Enter the home team's score: ", 0, 1000)
	if err != nil {
		return err
	}
	awayTeam, err := p.ReadLine("Enter the away team: ")
	if err != nil {
		return err
	}
	awayScore, err := p.AskInt("Enter the away team's score: ", 0, 1000)
	if err != nil {
		return err
	}

	if _, err := store.Add(homeTeam, homeScore, awayTeam, awayScore); err != nil {
		p.Errorf("Error: %v\n", err)
	}
	return nil
}

func searchResults(p *cli.Prompter, store *results.MemoryStore) error {
	query, err := p.ReadLine("Enter the team name: ")
	if err != nil {
		return err
	}

	p.Printf("Search results for %q:\n", query)
	found := store.SearchTeam(query)
	if len(found) == 0 {
		p.Printf("No results found.\n")
		return nil
	}
	for _, r := range found {
		p.Printf("%s\n", r)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cli.NewStdio()
	store := results.NewMemoryStore()

	for i := 0; i < cfg.ResultsMaxTurns; i++ {
		choice, err := p.AskChoice("Enter 1 to add a result or 2 to search for a result: ", "1", "2")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if choice == "1" {
			err = addResult(p, store)
		} else {
			err = searchResults(p, store)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
