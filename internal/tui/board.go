// internal/tui/board.go
//
// The 6x5 tile grid. Scored rows use verdict colors, the active row
// shows typed letters in the unscored treatment, future rows are blank.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quintile/wordle/internal/game"
)

const (
	tileWidth = 5
	tileGap   = 1
)

// boardWidth is the rendered width of one guess row.
func boardWidth() int {
	return game.WordLength*tileWidth + (game.WordLength-1)*tileGap
}

// boardHeight is the rendered height of the grid, one blank line
// between rows.
func boardHeight() int {
	return game.MaxGuesses*2 - 1
}

// drawBoard renders the grid with its top-left at (x, y). buffer holds
// the letters typed into the active row so far.
func drawBoard(s tcell.Screen, x, y int, g *game.Game, buffer []rune) {
	active := len(g.Guesses)
	for row := 0; row < game.MaxGuesses; row++ {
		cy := y + row*2
		for col := 0; col < game.WordLength; col++ {
			letter := ' '
			state := tileEmpty
			switch {
			case row < active:
				gu := g.Guesses[row]
				letter = toUpper(rune(gu.Word[col]))
				state = markState(gu.Marks[col])
			case row == active && !g.State().Finished() && col < len(buffer):
				letter = toUpper(buffer[col])
				state = tileUnknown
			}
			drawTile(s, x+col*(tileWidth+tileGap), cy, letter, state)
		}
	}
}

// drawTile paints one tile with the letter centered.
func drawTile(s tcell.Screen, x, y int, letter rune, state tileState) {
	st := state.style()
	for i := 0; i < tileWidth; i++ {
		c := ' '
		if i == tileWidth/2 {
			c = letter
		}
		s.SetContent(x+i, y, c, nil, st)
	}
}
