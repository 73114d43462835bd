package main

import (
	"fmt"
	"os"
	"strings"

	"gochallenges/internal/cli"
)

func countWords(s string) int {
	return len(strings.Fields(s))
}

// reverse works on runes so multi-byte characters survive intact.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func main() {
	p := cli.NewStdio()

	query, err := p.AskChoice("Would you like to count words (C) or reverse your sentence (R)?", "C", "R")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	sentence, err := p.ReadLine("Enter your sentence: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	switch query {
	case "c":
		p.Printf("Word count: %d\n", countWords(sentence))
	case "r":
		p.Printf("Reversed sentence: %s\n", reverse(sentence))
	}
}
