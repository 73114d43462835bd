package main

import (
	"fmt"
	"os"

	"gochallenges/internal/cli"
)

func main() {
	p := cli.NewStdio()
	name, err := p.ReadLine("What is your name?")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Hello, %s\n", name)
}
