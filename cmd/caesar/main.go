package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gochallenges/internal/cli"
)

const asciiAlphabetLen = 128

// shiftChar rotates an ASCII rune by shift positions, wrapping within the
// 128-character ASCII table. Non-ASCII runes pass through unchanged.
func shiftChar(c rune, shift int) rune {
	if c >= asciiAlphabetLen {
		return c
	}
	shifted := (int(c) + shift) % asciiAlphabetLen
	if shifted < 0 {
		shifted += asciiAlphabetLen
	}
	return rune(shifted)
}

func applyCipher(text string, shift int) string {
	var b strings.Builder
	for _, c := range text {
		b.WriteRune(shiftChar(c, shift))
	}
	return b.String()
}

func promptForShift(p *cli.Prompter) (int, error) {
	for {
		line, err := p.ReadLine("Enter the shift value: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.Errorf("Error: %v. Please enter a valid number in the range 0 to 255.\n", err)
			continue
		}
		return n, nil
	}
}

func main() {
	p := cli.NewStdio()

	mode, err := p.AskChoice("Enter 'e' to encrypt or 'd' to decrypt: ", "e", "d")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	text, err := p.ReadLine("Enter the text: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	shift, err := promptForShift(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if mode == "e" {
		p.Printf("encryption result: %s\n", applyCipher(text, shift))
	} else {
		p.Printf("decryption result: %s\n", applyCipher(text, -shift))
	}
}
