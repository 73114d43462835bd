package main

import (
	"fmt"
	"os"
	"time"

	"gochallenges/internal/cli"
)

func main() {
	p := cli.NewStdio()
	fmt.Println("This is a game that tests how good you are at guessing if 10 seconds has elapsed.")
	fmt.Println("Press Enter to start the game.")
	fmt.Println("Press Enter again when you think exactly 10 seconds has elapsed.")

	if err := p.WaitEnter(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Start!")
	start := time.Now()

	if err := p.WaitEnter(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Stop!")
	elapsed := int(time.Since(start).Seconds())

	if elapsed >= 10 {
		fmt.Printf("You waited too long! You waited for %d seconds.\n", elapsed)
	} else {
		fmt.Printf("You didn't wait long enough! You only waited for %d seconds.\n", elapsed)
	}
}
