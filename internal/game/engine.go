// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new sessions with deterministic dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, dictionary).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The answer and the dictionary are injected by the caller; this
//     package holds no global word state.
//   - Score is a pure function and is exported on its own so the
//     presentation layer and tests can evaluate words without a Game.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// WordLength is the number of letters per word.
	WordLength = 5
	// MaxGuesses is the number of attempts before a session is lost.
	MaxGuesses = 6
)

// Validation errors surfaced by Score and ApplyGuess. Rejected guesses
// never mutate session state or consume an attempt.
var (
	ErrInvalidLength = errors.New("game: word must be exactly 5 letters")
	ErrNotInWordList = errors.New("game: not in word list")
	ErrFinished      = errors.New("game: session already finished")
)

// New constructs a session around a known answer and dictionary.
// The answer is normalized to lowercase; callers obtain it from the
// words package (random or daily selection).
func New(answer string, dict Dictionary) *Game {
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(strings.TrimSpace(answer)),
		Guesses: []Guess{},
		dict:    dict,
	}
}

// ApplyGuess validates and scores a guess, mutating the session state.
// Returns the per-letter marks and the state after the guess.
//
// Validation rules:
//   - Session must not be finished (ErrFinished).
//   - Guess must be exactly WordLength letters a–z (ErrInvalidLength).
//   - Guess must be in the dictionary (ErrNotInWordList).
//
// State transitions:
//   - All tiles MarkCorrect → StateWon.
//   - Otherwise, MaxGuesses reached → StateLost.
func (g *Game) ApplyGuess(guess string) ([]Mark, State, error) {
	if g.State().Finished() {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != WordLength || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidLength
	}
	if g.dict != nil && !g.dict.IsAllowed(guess) {
		return nil, g.State(), ErrNotInWordList
	}

	marks, err := Score(g.Answer, guess)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, Guess{Word: guess, Marks: marks})
	if allCorrect(marks) {
		g.won = true
	}
	return marks, g.State(), nil
}

// State derives the session state from the guesses made so far.
func (g *Game) State() State {
	switch {
	case g.won:
		return StateWon
	case len(g.Guesses) >= MaxGuesses:
		return StateLost
	default:
		return StatePlaying
	}
}

// Remaining returns the number of attempts left.
func (g *Game) Remaining() int { return MaxGuesses - len(g.Guesses) }

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count
//     for that letter, mark Present and decrement the count; otherwise
//     mark Absent.
//
// This ensures correct behavior with repeated letters in both answer
// and guess: no letter is marked Present/Correct more times than it
// occurs in the answer. Both inputs must be exactly WordLength
// lowercase letters or ErrInvalidLength is returned.
func Score(answer, guess string) ([]Mark, error) {
	if len(answer) != WordLength || len(guess) != WordLength ||
		!isAlpha(answer) || !isAlpha(guess) {
		return nil, ErrInvalidLength
	}

	marks := make([]Mark, WordLength)

	// Letter frequency for the non-correct answer positions (a–z).
	var counts [26]int

	// First pass: mark correct tiles, count the rest of the answer.
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			marks[i] = MarkCorrect
		} else {
			counts[idx(answer[i])]++
		}
	}

	// Second pass: resolve present/absent for the remaining tiles.
	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			marks[i] = MarkPresent
			counts[j]--
		} else {
			marks[i] = MarkAbsent
		}
	}
	return marks, nil
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Inputs are validated to a–z before this is called.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// allCorrect returns true if every mark is MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
