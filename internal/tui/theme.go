// internal/tui/theme.go
//
// Tile states and styles. The palette is the classic Wordle one, so the
// board reads the same as the desktop original.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quintile/wordle/internal/game"
)

// tileState extends game.Mark with the two pre-score states a tile can
// be in: empty, and typed-but-unscored. Ordering matters: keyboard keys
// only ever move to a higher state.
type tileState int

const (
	tileEmpty   tileState = iota // nothing typed yet
	tileUnknown                  // typed, not yet scored
	tileAbsent
	tilePresent
	tileCorrect
)

var (
	colorEmpty   = tcell.NewRGBColor(0xd3, 0xd6, 0xda)
	colorUnknown = tcell.NewRGBColor(0x87, 0x8a, 0x8c)
	colorAbsent  = tcell.NewRGBColor(0x78, 0x7c, 0x7e)
	colorPresent = tcell.NewRGBColor(0xc9, 0xb4, 0x58)
	colorCorrect = tcell.NewRGBColor(0x6a, 0xaa, 0x64)

	colorText   = tcell.ColorWhite
	colorTextIn = tcell.ColorBlack // on the light "empty" background
)

// style returns the tcell style for a tile or key in this state.
func (t tileState) style() tcell.Style {
	bg := colorEmpty
	fg := colorTextIn
	switch t {
	case tileUnknown:
		bg, fg = colorUnknown, colorText
	case tileAbsent:
		bg, fg = colorAbsent, colorText
	case tilePresent:
		bg, fg = colorPresent, colorText
	case tileCorrect:
		bg, fg = colorCorrect, colorText
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)
}

// markState converts a scoring verdict into its display state.
func markState(m game.Mark) tileState {
	switch m {
	case game.MarkCorrect:
		return tileCorrect
	case game.MarkPresent:
		return tilePresent
	default:
		return tileAbsent
	}
}
