package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gochallenges/internal/cli"
)

func factors(n uint64) []uint64 {
	var result []uint64
	sqrtN := uint64(math.Sqrt(float64(n)))
	for i := uint64(1); i <= sqrtN; i++ {
		if n%i == 0 {
			result = append(result, i)
			if i != n/i {
				result = append(result, n/i)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// isPrime checks by factor count: primes have exactly the factors 1 and n.
func isPrime(n uint64) bool {
	return n > 1 && len(factors(n)) == 2
}

func main() {
	p := cli.NewStdio()
	line, err := p.ReadLine("Enter a number: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	n, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if isPrime(n) {
		fmt.Printf("%d is a prime number, its factors are 1 and %d.\n", n, n)
	} else {
		fmt.Printf("Factors of %d are: %v\n", n, factors(n))
	}
}
