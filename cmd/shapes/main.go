package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type shapeKind int

const (
	rectangle shapeKind = iota + 1
	cuboid
)

type shape struct {
	kind   shapeKind
	width  float64
	height float64
	depth  float64
}

func rectArea(width, height float64) float64 {
	return width * height
}

func cuboidVolume(width, height, depth float64) float64 {
	return width * height * depth
}

func readInput(r *bufio.Reader, prompt string) (string, error) {
	if prompt != "" {
		fmt.Print(prompt)
	}
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptForShape(r *bufio.Reader) (shape, error) {
	fmt.Println("Enter 1 for Rectangle, 2 for Cuboid")
	choiceStr, err := readInput(r, "")
	if err != nil {
		return shape{}, err
	}
	choice, err := strconv.Atoi(choiceStr)
	if err != nil {
		return shape{}, err
	}

	readDim := func(prompt string) (float64, error) {
		s, err := readInput(r, prompt)
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(s, 64)
	}

	switch shapeKind(choice) {
	case rectangle:
		s := shape{kind: rectangle}
		if s.width, err = readDim("Enter width: "); err != nil {
			return shape{}, err
		}
		if s.height, err = readDim("Enter height: "); err != nil {
			return shape{}, err
		}
		return s, nil
	case cuboid:
		s := shape{kind: cuboid}
		if s.width, err = readDim("Enter width: "); err != nil {
			return shape{}, err
		}
		if s.height, err = readDim("Enter height: "); err != nil {
			return shape{}, err
		}
		if s.depth, err = readDim("Enter depth: "); err != nil {
			return shape{}, err
		}
		return s, nil
	default:
		return shape{}, errors.New("invalid choice")
	}
}

func main() {
	s, err := promptForShape(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	switch s.kind {
	case rectangle:
		fmt.Printf("Area: %g\n", rectArea(s.width, s.height))
	case cuboid:
		fmt.Printf("Volume: %g\n", cuboidVolume(s.width, s.height, s.depth))
	}
}
