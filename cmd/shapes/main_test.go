package main

import (
	"bufio"
	"strings"
	"testing"
)

func testReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		width, height, want float64
	}{
		{2.0, 3.0, 6.0},
		{0.0, 5.0, 0.0},
		{2.5, 4.0, 10.0},
	}
	for _, tt := range tests {
		if got := rectArea(tt.width, tt.height); got != tt.want {
			t.Fatalf("rectArea(%g, %g) = %g, want %g", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestCuboidVolume(t *testing.T) {
	tests := []struct {
		width, height, depth, want float64
	}{
		{2.0, 3.0, 4.0, 24.0},
		{0.0, 5.0, 2.0, 0.0},
		{2.5, 4.0, 2.0, 20.0},
	}
	for _, tt := range tests {
		if got := cuboidVolume(tt.width, tt.height, tt.depth); got != tt.want {
			t.Fatalf("cuboidVolume(%g, %g, %g) = %g, want %g", tt.width, tt.height, tt.depth, got, tt.want)
		}
	}
}

func TestPromptForShape_Rectangle(t *testing.T) {
	s, err := promptForShape(testReader("1\n2.5\n3.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.kind != rectangle || s.width != 2.5 || s.height != 3.0 {
		t.Fatalf("unexpected shape: %+v", s)
	}
}

func TestPromptForShape_Cuboid(t *testing.T) {
	s, err := promptForShape(testReader("2\n2.5\n3.0\n4.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.kind != cuboid || s.width != 2.5 || s.height != 3.0 || s.depth != 4.0 {
		t.Fatalf("unexpected shape: %+v", s)
	}
}

func TestPromptForShape_InvalidChoice(t *testing.T) {
	if _, err := promptForShape(testReader("3\n")); err == nil {
		t.Fatal("expected error for invalid choice")
	}
}

func TestPromptForShape_NonNumericInput(t *testing.T) {
	if _, err := promptForShape(testReader("abc\n")); err == nil {
		t.Fatal("expected error for non-numeric choice")
	}
	if _, err := promptForShape(testReader("1\nwide\n")); err == nil {
		t.Fatal("expected error for non-numeric dimension")
	}
}
