package results

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MatchResult is a single recorded fixture.
type MatchResult struct {
	ID        string `json:"id"`
	HomeTeam  string `json:"homeTeam"`
	HomeScore int    `json:"homeScore"`
	AwayTeam  string `json:"awayTeam"`
	AwayScore int    `json:"awayScore"`
	AddedAt   int64  `json:"addedAtUnix"`
}

func (r MatchResult) String() string {
	return fmt.Sprintf("%s %d - %s %d", r.HomeTeam, r.HomeScore, r.AwayTeam, r.AwayScore)
}

// MemoryStore keeps results for the lifetime of the process. Nothing is
// persisted across runs.
type MemoryStore struct {
	mu      sync.RWMutex
	results []MatchResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add validates and records a result, returning the stored copy.
func (m *MemoryStore) Add(homeTeam string, homeScore int, awayTeam string, awayScore int) (MatchResult, error) {
	if homeTeam == "" || awayTeam == "" {
		return MatchResult{}, errors.New("team names must not be empty")
	}
	if homeScore < 0 || awayScore < 0 {
		return MatchResult{}, errors.New("scores must not be negative")
	}
	r := MatchResult{
		ID:        uuid.NewString(),
		HomeTeam:  homeTeam,
		HomeScore: homeScore,
		AwayTeam:  awayTeam,
		AwayScore: awayScore,
		AddedAt:   time.Now().Unix(),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return r, nil
}

// SearchTeam returns every result the named team played in, home or away,
// in insertion order.
func (m *MemoryStore) SearchTeam(team string) []MatchResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []MatchResult
	for _, r := range m.results {
		if r.HomeTeam == team || r.AwayTeam == team {
			out = append(out, r)
		}
	}
	return out
}

// Len reports how many results are stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}
