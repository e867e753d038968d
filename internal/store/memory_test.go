package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintile/wordle/internal/game"
)

type allowAll struct{}

func (allowAll) IsAllowed(string) bool { return true }

func TestNewRecord(t *testing.T) {
	g := game.New("crane", allowAll{})
	_, _, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("crane")
	require.NoError(t, err)

	r := NewRecord(g)
	assert.Equal(t, g.ID, r.ID)
	assert.Equal(t, "crane", r.Answer)
	assert.Equal(t, game.StateWon, r.State)
	require.Len(t, r.Marks, 2)
	assert.Equal(t, g.Guesses[0].Marks, r.Marks[0])
	assert.False(t, r.Finished.IsZero())
}

func TestMemoryStoreOrderAndCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Record{ID: "one"})
	s.Add(Record{ID: "two"})

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].ID)
	assert.Equal(t, "two", got[1].ID)

	// Mutating the returned slice must not affect the store.
	got[0].ID = "mutated"
	assert.Equal(t, "one", s.List()[0].ID)
}

func TestMemoryStoreEmpty(t *testing.T) {
	assert.Empty(t, NewMemoryStore().List())
}
