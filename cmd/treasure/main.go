package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gochallenges/internal/cli"
	"gochallenges/internal/config"
)

type point struct {
	x, y int
}

type proximity int

const (
	proximityHot proximity = iota
	proximityWarm
	proximityCold
)

func distance(p1, p2 point) float64 {
	xDiff := float64(p1.x - p2.x)
	yDiff := float64(p1.y - p2.y)
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

func getProximity(size int, p1, p2 point) proximity {
	d := distance(p1, p2)
	switch {
	case d <= float64(size)*0.25:
		return proximityHot
	case d <= float64(size)*0.5:
		return proximityWarm
	default:
		return proximityCold
	}
}

func parseLocation(input string, size int) (point, error) {
	coords := strings.Split(strings.TrimSpace(input), ",")
	if len(coords) != 2 {
		return point{}, fmt.Errorf("expected two numbers separated by a comma")
	}
	x, err1 := strconv.Atoi(strings.TrimSpace(coords[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err1 != nil || err2 != nil {
		return point{}, fmt.Errorf("expected two numbers separated by a comma")
	}
	if x < 0 || x >= size || y < 0 || y >= size {
		return point{}, fmt.Errorf("coordinates out of bounds")
	}
	return point{x, y}, nil
}

func promptForLocation(p *cli.Prompter, size int) (point, error) {
	prompt := "Enter the x,y location of the treasure: "
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return point{}, err
		}
		prompt = ""
		loc, err := parseLocation(line, size)
		if err != nil {
			if strings.Contains(err.Error(), "out of bounds") {
				p.Printf("Coordinates out of bounds. Please enter values within the grid size.\n")
			} else {
				p.Printf("Invalid input. Please enter two numbers separated by a comma.\n")
			}
			continue
		}
		return loc, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	size := cfg.TreasureGridSize

	p := cli.NewStdio()
	rng := rand.New(rand.NewSource(rand.Int63()))

	p.Printf("This is a game where you guess the x,y location of treasure on a %dx%d grid.\n", size, size)
	p.Printf("Make your guesses and follow the hints to find the treasure!\n")

	treasure := point{rng.Intn(size), rng.Intn(size)}
	for {
		guess, err := promptForLocation(p, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if guess == treasure {
			p.Printf("Congratulations! You found the treasure!\n")
			return
		}
		switch getProximity(size, guess, treasure) {
		case proximityHot:
			p.Printf("You're hot!\n")
		case proximityWarm:
			p.Printf("You're warm!\n")
		case proximityCold:
			p.Printf("You're cold!\n")
		}
	}
}
