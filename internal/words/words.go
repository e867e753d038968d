// internal/words/words.go
//
// Provides word lists for the game engine.
//
// Responsibilities:
//   - Load answer and allowed-guess lists from configured files or fall
//     back to the embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply secret selection (Random, ByIndex) and membership tests
//     (IsAllowed, IsAnswer).
//
// Word lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. If both AnswersFile and AllowedFile are set, load answers from
//      the first and allowed guesses from the second.
//   2. If only AllowedFile is set, load that file and use it for both.
//   3. If neither is set, fall back to the embedded lists.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • A List is immutable after Load; inject it where needed instead of
//     keeping package-level word state.

package words

import (
	"bufio"
	"errors"
	"math/rand"
	"os"
	"strings"

	"github.com/quintile/wordle/assets"
)

// Config points Load at external word-list files. Zero value means
// "use the embedded defaults".
type Config struct {
	AnswersFile string // optional path, one answer per line
	AllowedFile string // optional path, one valid guess per line
}

// List is the immutable word-source collaborator: canonical answers
// plus the set of playable guesses.
type List struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a List according to cfg. Returns an error if the
// resulting answers list is empty or a configured file can't be read.
func Load(cfg Config) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case cfg.AnswersFile != "" && cfg.AllowedFile != "":
		if ansList, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case cfg.AnswersFile == "" && cfg.AllowedFile != "":
		if allowList, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: answers file only, or nothing → embedded fallback
	case cfg.AnswersFile != "":
		if ansList, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		allowList = ansList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, err
		}
	}

	ansList = normalize(ansList)
	allowList = normalize(allowList)
	if len(ansList) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	l := &List{
		answers:    ansList,
		answersSet: toSet(ansList),
		allowedSet: toSet(ansList), // answers are always playable
	}
	for _, w := range allowList {
		l.allowedSet[w] = struct{}{}
	}
	return l, nil
}

// readWordFile loads one word per line from a file. Normalization and
// filtering happen later so embedded and file sources behave the same.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize lowercases and trims entries, keeping only valid 5-letter
// alphabetic words.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Random returns an answer chosen by rng. The generator is supplied by
// the caller so secret selection stays deterministic under test.
func (l *List) Random(rng *rand.Rand) string {
	return l.answers[rng.Intn(len(l.answers))]
}

// ByIndex returns the answer at i modulo the list length; used by the
// daily selection, which derives i from the date.
func (l *List) ByIndex(i int) string {
	if i < 0 {
		i = -i
	}
	return l.answers[i%len(l.answers)]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Counts returns the number of loaded words: (answers, allowed).
func (l *List) Counts() (answers int, allowed int) {
	return len(l.answers), len(l.allowedSet)
}
