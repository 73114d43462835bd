package main

import (
	"fmt"
	"os"
	"time"

	"gochallenges/internal/cli"
)

const dateLayout = "2006-01-02"

func daysBetween(date, today time.Time) int64 {
	d := truncateToDay(today).Sub(truncateToDay(date))
	return int64(d.Hours() / 24)
}

func secondsBetween(date, today time.Time) int64 {
	return daysBetween(date, today) * 86400
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
	date, err := time.Parse(dateLayout, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	today := time.Now()
	fmt.Printf("Days difference: %d\n", daysBetween(date, today))
	fmt.Printf("Seconds difference: %d\n", secondsBetween(date, today))
}
