// internal/cli/recap.go
//
// End-of-run recap: the classic emoji share grid, one block per
// finished session, printed once the screen has been released.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quintile/wordle/internal/game"
	"github.com/quintile/wordle/internal/store"
)

// printRecap writes a share grid for every finished session.
func printRecap(w io.Writer, records []store.Record) {
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Wordle %s\n%s", recapScore(r), shareGrid(r.Marks))
		if r.State == game.StateLost {
			fmt.Fprintf(w, "The word was %s.\n", strings.ToUpper(r.Answer))
		}
	}
}

// recapScore renders "4/6" for wins and "X/6" for losses.
func recapScore(r store.Record) string {
	tries := "X"
	if r.State == game.StateWon {
		tries = strconv.Itoa(len(r.Marks))
	}
	return tries + "/" + strconv.Itoa(game.MaxGuesses)
}

// shareGrid renders one emoji row per guess.
func shareGrid(rows [][]game.Mark) string {
	var b strings.Builder
	for _, row := range rows {
		for _, m := range row {
			switch m {
			case game.MarkCorrect:
				b.WriteString("🟩")
			case game.MarkPresent:
				b.WriteString("🟨")
			default:
				b.WriteString("⬛")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
