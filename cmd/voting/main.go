package main

import (
	"fmt"
	"os"
	"time"

	"gochallenges/internal/cli"
)

const (
	dateLayout   = "2006-01-02"
	daysInYear   = 365
	votingAgeMin = 18
)

func yearsDifference(birth, today time.Time) int64 {
	days := int64(truncateToDay(today).Sub(truncateToDay(birth)).Hours() / 24)
	return days / daysInYear
}

func isEligibleToVote(birth, today time.Time) bool {
	return yearsDifference(birth, today) >= votingAgeMin
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func main() {
	p := cli.NewStdio()
	line, err := p.ReadLine("Please enter your birth date (YYYY-MM-DD):")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	birth, err := time.Parse(dateLayout, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if isEligibleToVote(birth, time.Now()) {
		fmt.Println("You are eligible to vote!")
	} else {
		fmt.Println("You are not eligible to vote.")
	}
}
