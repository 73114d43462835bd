package main

import (
	"bytes"
	"strings"
	"testing"

	"gochallenges/internal/cli"
	"gochallenges/internal/results"
)

func TestAddResult_StoresEnteredMatch(t *testing.T) {
	store := results.NewMemoryStore()
	var out bytes.Buffer
	p := cli.New(strings.NewReader("Reds\n2\nBlues\n1\n"), &out)

	if err := addResult(p, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored result, got %d", store.Len())
	}
	found := store.SearchTeam("Reds")
	if len(found) != 1 || found[0].String() != "Reds 2 - Blues 1" {
		t.Fatalf("unexpected stored result: %v", found)
	}
}

func TestSearchResults_ReportsMisses(t *testing.T) {
	store := results.NewMemoryStore()
	var out bytes.Buffer
	p := cli.New(strings.NewReader("Greens\n"), &out)

	if err := searchResults(p, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No results found.") {
		t.Fatalf("expected miss message, got:\n%s", out.String())
	}
}

func TestSearchResults_PrintsMatches(t *testing.T) {
	store := results.NewMemoryStore()
	if _, err := store.Add("Reds", 2, "Blues", 1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := store.Add("Greens", 0, "Reds", 3); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var out bytes.Buffer
	p := cli.New(strings.NewReader("Reds\n"), &out)
	if err := searchResults(p, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Reds 2 - Blues 1") || !strings.Contains(out.String(), "Greens 0 - Reds 3") {
		t.Fatalf("expected both matches in output, got:\n%s", out.String())
	}
}
