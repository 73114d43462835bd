package main

import (
	"fmt"
	"os"

	"gochallenges/internal/cli"
)

const exitMarker = "exit"

func promptForNames(p *cli.Prompter) (map[string]int, error) {
	names := make(map[string]int)
	for {
		name, err := p.ReadLine("Enter a name (or 'exit' to finish): ")
		if err != nil {
			return nil, err
		}
		if name == exitMarker {
			return names, nil
		}
		names[name]++
	}
}

func duplicates(names map[string]int) map[string]int {
	dups := make(map[string]int)
	for name, count := range names {
		if count >= 2 {
			dups[name] = count
		}
	}
	return dups
}

func main() {
	p := cli.NewStdio()
	names, err := promptForNames(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for name, count := range duplicates(names) {
		p.Printf("%s has %d duplicates.\n", name, count)
	}
}
