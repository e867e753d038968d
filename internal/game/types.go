// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter verdict for a guess (absent/present/correct).
//   - State: coarse session state (playing/won/lost).
//   - Guess: a scored guess record, immutable once appended.
//   - Game: state for a single in-progress or finished session.

package game

// Mark is the verdict for a single letter in a guess.
//
// The values are ordered: Absent < Present < Correct. The presentation
// layer relies on this ordering to only ever upgrade a keyboard key's
// color, never downgrade it.
type Mark int

const (
	// MarkAbsent: the letter does not occur in the answer (or every
	// occurrence is already accounted for by another tile).
	MarkAbsent Mark = iota
	// MarkPresent: the letter occurs in the answer at another position.
	MarkPresent
	// MarkCorrect: the letter is in the correct position.
	MarkCorrect
)

// String returns the lowercase name of the mark.
func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	default:
		return "absent"
	}
}

// State is the coarse lifecycle state of a session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Finished reports whether the state is terminal.
func (s State) Finished() bool { return s != StatePlaying }

// Guess is one scored guess: the normalized word and its per-letter
// marks. Records are append-only; they are never modified after being
// added to a Game.
type Guess struct {
	Word  string // lowercase, exactly WordLength letters
	Marks []Mark // len == WordLength
}

// Dictionary is the valid-word collaborator consulted before scoring.
// Implemented by words.List; kept as an interface so sessions can be
// driven with fixtures in tests.
type Dictionary interface {
	// IsAllowed reports whether w may be played as a guess.
	IsAllowed(w string) bool
}

// Game holds the state of a single Wordle session.
// Single-owner mutable value: mutated only by ApplyGuess, no locking.
type Game struct {
	ID      string  // unique session identifier (random hex string)
	Answer  string  // the solution word, always lowercase
	Guesses []Guess // scored guesses so far, oldest first

	dict Dictionary // membership test for valid guesses
	won  bool
}
