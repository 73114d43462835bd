package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type queryKind int

const (
	queryDistance queryKind = iota + 1
	querySpeed
)

type query struct {
	kind queryKind
	// speed in mph for distance queries, distance in miles for speed
	// queries.
	value  float64
	timeHr float64
}

type calculation struct {
	value float64
	unit  string
}

func calculate(q query) calculation {
	switch q.kind {
	case queryDistance:
		return calculation{value: q.value * q.timeHr, unit: "miles"}
	default:
		return calculation{value: q.value / q.timeHr, unit: "mph"}
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptForParam(r *bufio.Reader, name string) (float64, error) {
	fmt.Printf("Enter %s: ", name)
	line, err := readLine(r)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return v, nil
}

func promptForQuery(r *bufio.Reader) (query, error) {
	fmt.Print("Enter query type (1:distance, 2:speed): ")
	kind, err := readLine(r)
	if err != nil {
		return query{}, err
	}

	switch kind {
	case "1":
		speed, err := promptForParam(r, "speed (mph)")
		if err != nil {
			return query{}, err
		}
		timeHr, err := promptForParam(r, "time (hours)")
		if err != nil {
			return query{}, err
		}
		return query{kind: queryDistance, value: speed, timeHr: timeHr}, nil
	case "2":
		distance, err := promptForParam(r, "distance (miles)")
		if err != nil {
			return query{}, err
		}
		timeHr, err := promptForParam(r, "time (hours)")
		if err != nil {
			return query{}, err
		}
		return query{kind: querySpeed, value: distance, timeHr: timeHr}, nil
	default:
		return query{}, errors.New("invalid input, please enter 1 or 2")
	}
}

func main() {
	q, err := promptForQuery(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := calculate(q)
	label := "Speed"
	if q.kind == queryDistance {
		label = "Distance"
	}
	fmt.Printf("%s: %.2f %s\n", label, result.value, result.unit)
}
