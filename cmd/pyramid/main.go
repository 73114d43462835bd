package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gochallenges/internal/cli"
)

func drawStars(numSpaces, numStars int) string {
	return strings.Repeat(" ", numSpaces) + strings.Repeat("*", numStars)
}

func drawPyramid(p *cli.Prompter, base int) {
	for i := 0; i < base; i++ {
		p.Printf("%s\n", drawStars(base-i-1, 2*i+1))
	}
}

func promptForBase(p *cli.Prompter) (int, error) {
	for {
		line, err := p.ReadLine("Enter the base of the pyramid: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.Errorf("Error: %v. Please enter a valid number.\n", err)
			continue
		}
		if n%2 == 0 {
			p.Printf("Invalid input. Please enter an odd number.\n")
			continue
		}
		return n, nil
	}
}

func main() {
	p := cli.NewStdio()
	base, err := promptForBase(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	drawPyramid(p, base)
}
