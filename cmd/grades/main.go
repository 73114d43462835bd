package main

import (
	"errors"
	"fmt"
	"os"

	"gochallenges/internal/cli"
)

const maxScore = 100

var errScoreOutOfRange = errors.New("UMS score out of range")

func umsToGrade(ums int) (byte, error) {
	if ums < 0 || ums > maxScore {
		return 0, errScoreOutOfRange
	}
	switch {
	case ums >= 80:
		return 'A', nil
	case ums >= 70:
		return 'B', nil
	case ums >= 60:
		return 'C', nil
	case ums >= 50:
		return 'D', nil
	default:
		return 'F', nil
	}
}

func printResults(p *cli.Prompter, module1, module2 int) error {
	g1, err := umsToGrade(module1)
	if err != nil {
		return err
	}
	g2, err := umsToGrade(module2)
	if err != nil {
		return err
	}
	overall, err := umsToGrade((module1 + module2) / 2)
	if err != nil {
		return err
	}

	p.Printf("Result: \n")
	p.Printf("Module 1: %c\n", g1)
	p.Printf("Module 2: %c\n", g2)
	p.Printf("AS Level: %c\n", overall)
	return nil
}

func main() {
	p := cli.NewStdio()

	module1, err := p.AskInt("Enter UMS score for Module 1: ", 0, maxScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	module2, err := p.AskInt("Enter UMS score for Module 2: ", 0, maxScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if err := printResults(p, module1, module2); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
