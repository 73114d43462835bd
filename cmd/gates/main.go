package main

import (
	"fmt"
	"os"

	"gochallenges/internal/cli"
)

var gates = map[string]func(a, b bool) bool{
	"and":  func(a, b bool) bool { return a && b },
	"or":   func(a, b bool) bool { return a || b },
	"xor":  func(a, b bool) bool { return a != b },
	"nand": func(a, b bool) bool { return !(a && b) },
	"nor":  func(a, b bool) bool { return !(a || b) },
}

func evalGate(kind string, a, b bool) (bool, error) {
	gate, ok := gates[kind]
	if !ok {
		return false, fmt.Errorf("unknown gate type: %q", kind)
	}
	return gate(a, b), nil
}

func main() {
	p := cli.NewStdio()
	kind, err := p.AskChoice(
		"Enter the type of gate you want to create (and, or, xor, nand, nor): ",
		"and", "or", "xor", "nand", "nor",
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
		return
	}

	a, err := p.AskInt("Enter the value for input A (1 or 0): ", 0, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
		return
	}
	b, err := p.AskInt("Enter the value for input B (1 or 0): ", 0, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read line: %v\n", err)
		return
	}

	out, err := evalGate(kind, a == 1, b == 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create gate: %v\n", err)
		return
	}
	fmt.Printf("Result: %t\n", out)
}
