package main

import (
	"fmt"
	"math/big"
	"os"

	"gochallenges/internal/cli"
)

// fib computes the nth Fibonacci number iteratively. big.Int keeps large
// indices exact where a fixed-width integer would overflow.
func fib(n int) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	if n == 0 {
		return a
	}
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}

func main() {
	p := cli.NewStdio()
	index, err := p.AskInt("Enter the index of the Fibonacci number: ", 0, 255)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	p.Printf("Fibonacci number at index %d: %s\n", index, fib(index).String())
}
