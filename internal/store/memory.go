// internal/store/memory.go
//
// In-memory session history. Records every finished session during one
// process run so the CLI can print a recap (share grid) on exit.
//
// Characteristics:
//   - Keeps Record values in completion order.
//   - Concurrency-safe via RWMutex.
//   - Nothing is written to disk; history is gone when the process
//     exits.

package store

import (
	"sync"
	"time"

	"github.com/quintile/wordle/internal/game"
)

// Record is the immutable summary of one finished session.
type Record struct {
	ID       string        // session identifier
	Answer   string        // the secret, lowercase
	State    game.State    // StateWon or StateLost
	Marks    [][]game.Mark // per-guess verdict rows, oldest first
	Finished time.Time
}

// NewRecord summarizes a finished game.
func NewRecord(g *game.Game) Record {
	marks := make([][]game.Mark, 0, len(g.Guesses))
	for _, gu := range g.Guesses {
		marks = append(marks, gu.Marks)
	}
	return Record{
		ID:       g.ID,
		Answer:   g.Answer,
		State:    g.State(),
		Marks:    marks,
		Finished: time.Now(),
	}
}

// Store is the session-history interface. Implementations may be
// backed by memory (this package) or, in other deployments, something
// durable.
type Store interface {
	// Add appends a finished session record.
	Add(r Record)

	// List returns all records in completion order.
	List() []Record
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards records
	records []Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Add appends the record to the history.
func (m *memory) Add(r Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
}

// List returns a copy of the history in completion order.
func (m *memory) List() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}
