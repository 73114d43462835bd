package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

// promptForWord reads the target word with terminal echo disabled so the
// guessing player cannot see it.
func promptForWord(p *cli.Prompter) (string, error) {
	for {
		p.Printf("Player 1, enter a word: \n")
		word, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", err
		}
		trimmed := strings.ToUpper(strings.TrimSpace(string(word)))
		if trimmed == "" {
			continue
		}
		return trimmed, nil
	}
}

func promptForLetter(p *cli.Prompter, numLives int) (byte, error) {
	for {
		line, err := p.ReadLine(fmt.Sprintf("You have %d lives left - Letter? ", numLives))
		if err != nil {
			return 0, err
		}
		runes := []rune(line)
		if len(runes) == 0 || !unicode.IsLetter(runes[0]) || runes[0] > unicode.MaxASCII {
			p.Printf("Invalid input. Please enter a single letter.\n")
			continue
		}
		return byte(unicode.ToUpper(runes[0])), nil
	}
}

func updatePlayerWord(targetWord string, guessLetter byte, playerWord string) string {
	out := []byte(playerWord)
	for i := 0; i < len(targetWord); i++ {
		if targetWord[i] == guessLetter {
			out[i] = guessLetter
		}
	}
	return string(out)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cli.NewStdio()

	targetWord, err := promptForWord(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	playerWord := strings.Repeat("*", len(targetWord))
	p.Printf("Word to guess: %s\n", playerWord)

	lives := cfg.HangmanLives
	for lives > 0 {
		letter, err := promptForLetter(p, lives)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if strings.IndexByte(targetWord, letter) < 0 {
			lives--
		} else {
			playerWord = updatePlayerWord(targetWord, letter, playerWord)
		}

		if !strings.Contains(playerWord, "*") {
			p.Printf("Congratulations! You've guessed the word: %s\n", targetWord)
			return
		}
		if lives == 0 {
			p.Printf("You've run out of lives. The word was: %s\n", targetWord)
			return
		}
		p.Printf("Word to guess: %s\n", playerWord)
	}
}
